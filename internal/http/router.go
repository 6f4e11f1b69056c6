package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session middleware carries the theme override across requests
	if cfg.Sessions == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	router.Use(cfg.Sessions.LoadSave())

	// Load one template set per module directory
	tmpl, err := LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	// Create controllers
	health := NewHealthController(cfg.Database, cfg.Version)
	catalog := NewCatalogController(cfg.Books, cfg.Categories, cfg.Resolver, cfg.Sessions)
	theme := NewThemeController(cfg.Resolver, cfg.Sessions)

	// Health endpoint
	router.GET("/health", health.Status)

	// Catalog pages
	router.GET("/", catalog.ListPage)
	router.GET("/view/:id", catalog.ViewPage)
	router.GET("/edit/:id", catalog.EditForm)
	router.POST("/edit/:id", catalog.EditSubmit)
	router.GET("/add", catalog.AddForm)
	router.POST("/add", catalog.AddSubmit)
	// Destructive GET, kept for interface compatibility (see DESIGN.md)
	router.GET("/delete/:id", catalog.Delete)

	// Theme selection
	router.POST("/set_theme", theme.SetTheme)

	return router, nil
}
