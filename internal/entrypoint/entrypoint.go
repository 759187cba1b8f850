package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/memory"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/services"
)

// App is the assembled dependency graph shared by the server and the CLI.
type App struct {
	Books    *services.BookService
	Database *database.Database // nil for the memory driver
}

// Close releases the database connection, if any.
func (a *App) Close() error {
	if a.Database == nil {
		return nil
	}
	return a.Database.Close()
}

// NewApp wires storage and services for the configured database driver.
func NewApp(cfg config.Database) (*App, error) {
	if cfg.Driver == config.DriverMemory {
		log.Printf("Using in-memory book store; data is lost on exit")
		return &App{Books: services.NewBookService(memory.NewRepository())}, nil
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &App{
		Books:    services.NewBookService(books.NewRepository(db.DB)),
		Database: db,
	}, nil
}

// NewRouterConfig maps the application config onto the router dependencies.
func NewRouterConfig(cfg *config.Config, app *App, version string) http_controllers.RouterConfig {
	routerCfg := http_controllers.RouterConfig{
		BookService:   app.Books,
		TemplatesPath: cfg.UI.TemplatesPath,
		SecureCookies: cfg.Security.SecureCookies,
		Version:       version,
	}
	// Leave the interface nil rather than wrapping a nil pointer.
	if app.Database != nil {
		routerCfg.Database = app.Database
	}
	if cfg.Security.CSRFSecret != "" {
		routerCfg.CSRFSecret = []byte(cfg.Security.CSRFSecret)
	} else {
		log.Printf("WARNING: CSRF_SECRET is not set. Form posts are not CSRF protected.")
	}
	return routerCfg
}

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	app, err := NewApp(cfg.Database)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	router := http_controllers.NewRouter(NewRouterConfig(cfg, app, version))

	Serve(router, cfg)
}
