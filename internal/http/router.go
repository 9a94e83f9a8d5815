package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/logging"
	"github.com/mrlokans/catalog/internal/session"
	"github.com/mrlokans/catalog/internal/web"
)

// NewRouter creates the gin engine serving the JSON API, health checks
// and, when enabled, the HTML UI.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(logging.RequestID())
	router.Use(logging.RequestLogger())
	router.Use(Recovery(cfg.Development))

	// Apply demo mode middleware if enabled
	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.InjectContext())
		router.Use(cfg.DemoMiddleware.Handler())
	}

	router.Use(ErrorHandler(cfg.Development))
	router.NoRoute(NoRoute)

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Health)
	router.GET("/ping", health.Ping)

	authors := NewAuthorsController(cfg.Authors)
	books := NewBooksController(cfg.Books)

	api := router.Group(cfg.APIPrefix)
	{
		api.GET("/authors", authors.List)
		api.GET("/authors/:id", authors.Get)
		api.POST("/authors", authors.Create)
		api.PUT("/authors/:id", authors.Update)
		api.DELETE("/authors/:id", authors.Delete)

		api.GET("/books", books.List)
		api.GET("/books/:id", books.Get)
		api.POST("/books", books.Create)
		api.PUT("/books/:id", books.Update)
		api.DELETE("/books/:id", books.Delete)
	}

	if cfg.UIEnabled {
		registerUI(router, cfg)
	}

	return router
}

func registerUI(router *gin.Engine, cfg RouterConfig) {
	router.SetHTMLTemplate(template.Must(web.Templates()))
	router.StaticFS("/static", web.Static())

	middleware := []gin.HandlerFunc{session.SecurityHeadersMiddleware()}
	if cfg.SecureCookies {
		middleware = append(middleware, session.StrictTransportSecurityMiddleware())
	}
	if len(cfg.CSRFKey) > 0 {
		middleware = append(middleware, session.CSRFMiddleware(cfg.CSRFKey, cfg.SecureCookies))
	}
	// Session runs after CSRF so session context isn't overwritten by CSRF's request replacement
	if cfg.SessionManager != nil {
		middleware = append(middleware, cfg.SessionManager.LoadSave())
	}

	ui := NewUIController(cfg.Authors, cfg.Books, cfg.SessionManager)
	pages := router.Group("/", middleware...)
	{
		pages.GET("/", ui.Home)

		pages.GET("/ui/authors", ui.AuthorsPage)
		pages.GET("/ui/authors/new", ui.NewAuthorPage)
		pages.GET("/ui/authors/:id", ui.AuthorPage)
		pages.GET("/ui/authors/:id/edit", ui.EditAuthorPage)
		pages.POST("/ui/authors", ui.CreateAuthor)
		pages.POST("/ui/authors/:id", ui.UpdateAuthor)
		pages.POST("/ui/authors/:id/delete", ui.DeleteAuthor)

		pages.GET("/ui/books", ui.BooksPage)
		pages.GET("/ui/books/new", ui.NewBookPage)
		pages.GET("/ui/books/:id", ui.BookPage)
		pages.GET("/ui/books/:id/edit", ui.EditBookPage)
		pages.POST("/ui/books", ui.CreateBook)
		pages.POST("/ui/books/:id", ui.UpdateBook)
		pages.POST("/ui/books/:id/delete", ui.DeleteBook)
	}
}
