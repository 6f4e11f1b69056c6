package http

import (
	"github.com/gin-gonic/gin"

	"github.com/hondana/hondana/internal/session"
	"github.com/hondana/hondana/internal/themes"
)

// ThemeController handles the per-session template-module override.
type ThemeController struct {
	resolver *themes.Resolver
	sessions *session.Manager
}

func NewThemeController(r *themes.Resolver, s *session.Manager) *ThemeController {
	return &ThemeController{resolver: r, sessions: s}
}

// SetTheme stores the requested template module in the session when it
// belongs to the allow-list. An unknown name is silently ignored - the prior
// override (or the default) stays in effect. Either way the client is sent
// back to the page it came from.
func (controller *ThemeController) SetTheme(c *gin.Context) {
	requested := c.PostForm("theme")
	if controller.resolver.Valid(requested) {
		controller.sessions.SetTheme(c.Request, requested)
	}

	redirectBack(c)
}
