// Package session provides the browser-facing half of the catalog UI:
// cookie sessions backed by SQLite (used for flash messages after form
// posts), CSRF protection for HTML forms, and security response headers.
//
// The JSON API does not use any of this; the router only mounts these
// middlewares on UI routes.
//
// Initialize in entrypoint:
//
//	sm, err := session.NewManager(sqlDB, cfg.Session)
//	ui := router.Group("/", session.CSRFMiddleware(key, cfg.Session.SecureCookies), sm.LoadSave())
//
// Use in handlers:
//
//	sm.Flash(c, "Author created")
//	msg := sm.PopFlash(c)
package session
