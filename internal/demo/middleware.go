// Package demo implements a read-only demo mode. When enabled, every
// mutating request is rejected so a publicly hosted instance seeded with
// the demo catalogue cannot be modified by visitors.
package demo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware blocks write operations in demo mode. GET requests always
// pass; a small allowlist keeps the login flow usable.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a demo mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether demo mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if m.isAllowedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		m.respondBlocked(c)
	}
}

// isAllowedPath lists the paths that stay writable in demo mode. Signing
// in and out with the demo account must keep working; everything else,
// including registration, is frozen. Exact matches only, a prefix check
// would also open up unrelated sibling paths.
func (m *Middleware) isAllowedPath(path string) bool {
	switch path {
	case "/login", "/logout":
		return true
	}
	return false
}

// respondBlocked sends a 403 response, as JSON for API clients and plain
// text otherwise.
func (m *Middleware) respondBlocked(c *gin.Context) {
	message := "This action is disabled in demo mode"

	if strings.HasPrefix(c.Request.URL.Path, "/api/") ||
		strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     message,
			"demo_mode": true,
		})
		c.Abort()
		return
	}

	c.String(http.StatusForbidden, message)
	c.Abort()
}
