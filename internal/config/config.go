package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		UI
		Themes
		Session
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Themes struct {
		// Available is the fixed allow-list of template modules.
		Available []string
		// Default must be a member of Available (checked by Validate).
		Default string
	}
	Session struct {
		Lifetime      time.Duration
		SecureCookies bool
		CSRFEnabled   bool
		CSRFSecret    string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8193)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")
	v.SetDefault("default_template", DefaultTemplateModule)
	v.SetDefault("available_templates", strings.Join(DefaultAvailableTemplates, ","))
	v.SetDefault("session_lifetime", "168h")
	v.SetDefault("secure_cookies", false)
	v.SetDefault("csrf_enabled", false)
	v.SetDefault("csrf_secret", "")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Themes: Themes{
			Available: splitList(v.GetString("AVAILABLE_TEMPLATES")),
			Default:   v.GetString("DEFAULT_TEMPLATE"),
		},
		Session: Session{
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
			CSRFEnabled:   v.GetBool("CSRF_ENABLED"),
			CSRFSecret:    v.GetString("CSRF_SECRET"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}

// Validate checks the parts of the configuration that must fail fast at
// startup, before any request is served.
func (c *Config) Validate() error {
	if len(c.Themes.Available) == 0 {
		return fmt.Errorf("AVAILABLE_TEMPLATES must list at least one template module")
	}
	for _, name := range c.Themes.Available {
		if c.Themes.Default == name {
			return nil
		}
	}
	return fmt.Errorf("default template module %q is not in the available set %v",
		c.Themes.Default, c.Themes.Available)
}

// splitList parses a comma-separated env value, trimming whitespace and
// dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
