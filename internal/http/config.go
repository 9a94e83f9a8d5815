package http

import (
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/demo"
	"github.com/mrlokans/catalog/internal/session"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Authors  AuthorService
	Books    BookService
	Database *database.Database

	// JSON API
	APIPrefix   string
	Development bool // Expose raw messages of unexpected errors

	// Server-rendered UI; sessions and CSRF are optional
	UIEnabled      bool
	SessionManager *session.Manager
	CSRFKey        []byte
	SecureCookies  bool

	// Demo mode (optional)
	DemoMiddleware *demo.Middleware

	// Application info
	Version string
}
