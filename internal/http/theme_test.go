package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTheme_ValidThemeChangesRendering(t *testing.T) {
	s := setupTestServer(t, nil)

	// Default rendering before any override.
	w := s.do(t, "GET", "/", nil, nil)
	require.Contains(t, w.Body.String(), "GENERIC LIST")

	w = s.do(t, "POST", "/set_theme", url.Values{"theme": {"bulma"}}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected a session cookie")

	// Subsequent requests with the session cookie render through the
	// overridden module.
	w = s.do(t, "GET", "/", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "BULMA LIST")

	w = s.do(t, "GET", "/view/99999", nil, cookies)
	assert.Contains(t, w.Body.String(), "BULMA VIEW")
}

func TestSetTheme_InvalidThemeSilentlyIgnored(t *testing.T) {
	s := setupTestServer(t, nil)

	w := s.do(t, "POST", "/set_theme", url.Values{"theme": {"not-a-real-theme"}}, nil)

	// Still a redirect, no error surfaced.
	assert.Equal(t, http.StatusFound, w.Code)

	// The default stays in effect.
	w = s.do(t, "GET", "/", nil, w.Result().Cookies())
	assert.Contains(t, w.Body.String(), "GENERIC LIST")
}

func TestSetTheme_InvalidDoesNotClobberPriorOverride(t *testing.T) {
	s := setupTestServer(t, nil)

	w := s.do(t, "POST", "/set_theme", url.Values{"theme": {"bulma"}}, nil)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = s.do(t, "POST", "/set_theme", url.Values{"theme": {"bogus"}}, cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	// Session cookie may be re-issued; keep whichever is newest.
	if fresh := w.Result().Cookies(); len(fresh) > 0 {
		cookies = fresh
	}

	w = s.do(t, "GET", "/", nil, cookies)
	assert.Contains(t, w.Body.String(), "BULMA LIST")
}

func TestSetTheme_RedirectsToReferer(t *testing.T) {
	s := setupTestServer(t, nil)

	form := url.Values{"theme": {"bulma"}}
	w := s.do(t, "POST", "/set_theme", form, nil)
	assert.Equal(t, "/", w.Header().Get("Location"))

	req := newFormRequest(t, "/set_theme", form)
	req.Header.Set("Referer", "/view/3")
	w = serve(s, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/view/3", w.Header().Get("Location"))
}
