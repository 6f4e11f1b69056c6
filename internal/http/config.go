package http

import (
	"github.com/hondana/hondana/internal/database"
	"github.com/hondana/hondana/internal/session"
	"github.com/hondana/hondana/internal/themes"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Books      BookStore
	Categories CategoryStore
	Database   *database.Database
	Resolver   *themes.Resolver
	Sessions   *session.Manager

	// UI paths
	TemplatesPath string
	StaticPath    string

	// CSRF protection (opt-in; empty secret disables the middleware)
	CSRFSecret    []byte
	SecureCookies bool

	// Application info
	Version string
}
