package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/hondana/hondana/internal/config"
	"github.com/hondana/hondana/internal/database"
	"github.com/hondana/hondana/internal/database/books"
	"github.com/hondana/hondana/internal/database/categories"
	"github.com/hondana/hondana/internal/session"
	"github.com/hondana/hondana/internal/themes"
)

// testTemplates writes a minimal two-module template tree and returns its
// root. Each template emits markers the tests can assert on.
func testTemplates(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"generic/list.html": `GENERIC LIST books={{len .books}} theme={{.CurrentTheme}} modules={{len .AVAILABLE_TEMPLATES}}` +
			`{{range .books}} [{{.Title}}/{{.CategoryName}}]{{end}}`,
		"generic/view.html": `GENERIC VIEW {{if .book}}title={{.book.Title}} category={{.book.CategoryName}}{{else}}NO BOOK{{end}}`,
		"generic/form.html": `GENERIC FORM {{if .book}}title={{.book.Title}}{{else}}blank{{end}} categories={{len .categories}}`,
		"bulma/list.html":   `BULMA LIST books={{len .books}}`,
		"bulma/view.html":   `BULMA VIEW`,
		"bulma/form.html":   `BULMA FORM`,
	}
	for name, body := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return root
}

type testServer struct {
	router   *gin.Engine
	db       *database.Database
	books    *books.Repository
	cats     *categories.Repository
	sessions *session.Manager
}

func setupTestServer(t *testing.T, csrfSecret []byte) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)

	sessions, err := session.NewManager(sqlDB, config.Session{Lifetime: time.Hour})
	require.NoError(t, err)

	resolver, err := themes.NewResolver([]string{"generic", "bulma"}, "generic")
	require.NoError(t, err)

	bookRepo := books.NewRepository(db.DB)
	catRepo := categories.NewRepository(db.DB)

	router, err := NewRouter(RouterConfig{
		Books:         bookRepo,
		Categories:    catRepo,
		Database:      db,
		Resolver:      resolver,
		Sessions:      sessions,
		TemplatesPath: testTemplates(t),
		CSRFSecret:    csrfSecret,
		Version:       "test",
	})
	require.NoError(t, err)

	return &testServer{
		router:   router,
		db:       db,
		books:    bookRepo,
		cats:     catRepo,
		sessions: sessions,
	}
}

// do performs a request, carrying over any cookies from prior responses.
func (s *testServer) do(t *testing.T, method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// newFormRequest builds a form POST for tests that need extra headers.
func newFormRequest(t *testing.T, target string, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func serve(s *testServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestRouter_RequiresSessionManager(t *testing.T) {
	gin.SetMode(gin.TestMode)

	_, err := NewRouter(RouterConfig{TemplatesPath: testTemplates(t)})
	require.Error(t, err)
}

func TestLoadTemplates_MissingDirectory(t *testing.T) {
	_, err := LoadTemplates("./does-not-exist")
	require.Error(t, err)
}
