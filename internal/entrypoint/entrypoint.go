package entrypoint

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hondana/hondana/internal/config"
	"github.com/hondana/hondana/internal/database"
	"github.com/hondana/hondana/internal/database/books"
	"github.com/hondana/hondana/internal/database/categories"
	http_controllers "github.com/hondana/hondana/internal/http"
	"github.com/hondana/hondana/internal/session"
	"github.com/hondana/hondana/internal/themes"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain with the configured timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Hondana v%s", version)

	// Invalid theme configuration is unrecoverable: fail before serving
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	resolver, err := themes.NewResolver(cfg.Themes.Available, cfg.Themes.Default)
	if err != nil {
		log.Fatalf("Invalid theme configuration: %v", err)
	}
	log.Printf("Template modules: %v (default: %s)", resolver.Modules(), resolver.Default())

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Session store lives in the same sqlite file
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessions, err := session.NewManager(sqlDB, cfg.Session)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	var csrfSecret []byte
	if cfg.Session.CSRFEnabled {
		csrfSecret = resolveCSRFSecret(cfg.Session.CSRFSecret)
	}

	routerCfg := http_controllers.RouterConfig{
		Books:         books.NewRepository(db.DB),
		Categories:    categories.NewRepository(db.DB),
		Database:      db,
		Resolver:      resolver,
		Sessions:      sessions,
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		CSRFSecret:    csrfSecret,
		SecureCookies: cfg.Session.SecureCookies,
		Version:       version,
	}

	router, err := http_controllers.NewRouter(routerCfg)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	Serve(router, cfg)
}

// resolveCSRFSecret decodes the configured secret (hex or raw bytes), or
// generates an ephemeral one when none is set.
func resolveCSRFSecret(configured string) []byte {
	if configured != "" {
		if secret, err := hex.DecodeString(configured); err == nil {
			return secret
		}
		// Not hex, use as raw bytes
		return []byte(configured)
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("Failed to generate CSRF secret: %v", err)
	}
	log.Printf("Generated CSRF secret (set CSRF_SECRET to persist across restarts)")
	return secret
}
