package config

// Default paths and template modules
const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./catalog.db"

	// DefaultTemplateModule is used when a session carries no theme override
	DefaultTemplateModule = "generic"
)

// DefaultAvailableTemplates is the built-in template module allow-list.
var DefaultAvailableTemplates = []string{"generic", "bulma"}
