// Package session persists per-client state server-side, keyed by a cookie.
// The catalog stores a single value: the template-module override chosen via
// the theme picker.
package session

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/hondana/hondana/internal/config"
)

// KeyTheme is the session key holding the template-module override.
const KeyTheme = "theme"

// Manager wraps scs.SessionManager with the catalog's theme accessors.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a session manager backed by the application's sqlite
// database. The sqlDB parameter should be the underlying *sql.DB from GORM.
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
	// Create the sessions table if it doesn't exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = cfg.Lifetime

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	// Lax rather than Strict: the theme picker posts and redirects back via
	// Referer, and the cookie must survive those navigations.
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// Theme returns the stored template-module override, or "" when the session
// carries none.
func (m *Manager) Theme(r *http.Request) string {
	return m.GetString(r.Context(), KeyTheme)
}

// SetTheme stores a template-module override, replacing any prior value.
// Callers validate the name against the allow-list before writing.
func (m *Manager) SetTheme(r *http.Request, name string) {
	m.Put(r.Context(), KeyTheme, name)
}
