package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/security"
	"github.com/mrlokans/bookshelf/templates"
)

// loadTemplates parses the views from disk when a path is configured and
// from the embedded copy otherwise.
func loadTemplates(templatesPath string) *template.Template {
	tmpl := template.New("")
	if templatesPath != "" {
		return template.Must(tmpl.ParseGlob(templatesPath + "/*.html"))
	}
	return template.Must(tmpl.ParseFS(templates.FS, "*.html"))
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(security.SecurityHeadersMiddleware())

	if len(cfg.CSRFSecret) > 0 {
		router.Use(security.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	router.SetHTMLTemplate(loadTemplates(cfg.TemplatesPath))

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.BookService)
	booksAPI := NewBooksAPIController(cfg.BookService)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// UI routes
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, booksPath)
	})
	router.GET("/books", booksController.List)
	router.GET("/books/new", booksController.NewForm)
	router.GET("/books/edit", booksController.EditForm)
	router.POST("/books", booksController.Save)
	// TODO: deletion over GET is unsafe for crawlers and link prefetchers; move to POST once the list page uses forms.
	router.GET("/books/delete", booksController.Delete)

	// Books API endpoints
	router.GET("/api/books", booksAPI.GetAllBooks)
	router.GET("/api/books/:id", booksAPI.GetBook)

	return router
}
