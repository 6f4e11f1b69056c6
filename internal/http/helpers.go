package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// View names used by the route handlers. Each template module provides one
// file per view.
const (
	ViewList = "list"
	ViewView = "view"
	ViewForm = "form"
)

// parseID parses the :id path segment. On a malformed segment it writes a
// 400 response and returns ok=false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid book ID")
		return 0, false
	}
	return uint(id), true
}

// redirectBack redirects to the referring page, or to the listing page when
// no referrer is known.
func redirectBack(c *gin.Context) {
	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}
