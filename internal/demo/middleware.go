// Package demo implements the read-only public demo mode: visitors can browse
// the catalog but every write is refused, and the data is periodically reset
// to the sample catalog.
package demo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BlockedMessage is returned for every refused write.
const BlockedMessage = "This action is disabled in demo mode"

// Middleware blocks write operations in demo mode.
// Read-only operations (GET, HEAD, OPTIONS) are always allowed.
type Middleware struct {
	enabled   bool
	apiPrefix string
}

// NewMiddleware creates a demo mode middleware. Requests under apiPrefix are
// answered with the JSON error envelope.
func NewMiddleware(enabled bool, apiPrefix string) *Middleware {
	return &Middleware{enabled: enabled, apiPrefix: apiPrefix}
}

// IsEnabled returns whether demo mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
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

		m.respondBlocked(c)
	}
}

func (m *Middleware) wantsJSON(c *gin.Context) bool {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	path := c.Request.URL.Path
	return m.apiPrefix != "" && (path == m.apiPrefix || strings.HasPrefix(path, m.apiPrefix+"/"))
}

// respondBlocked sends a 403 response in the format the caller expects.
func (m *Middleware) respondBlocked(c *gin.Context) {
	if m.wantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"statusCode": http.StatusForbidden,
			"error":      "Forbidden",
			"message":    BlockedMessage,
		})
		return
	}

	c.String(http.StatusForbidden, BlockedMessage)
	c.Abort()
}

// ContextKeyDemoMode holds the demo flag for template rendering.
const ContextKeyDemoMode = "demo_mode"

// InjectContext middleware adds demo mode flag to context for template rendering.
func (m *Middleware) InjectContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyDemoMode, m.enabled)
		c.Next()
	}
}
