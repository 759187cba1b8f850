package entrypoint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
)

func TestNewApp_Memory(t *testing.T) {
	app, err := NewApp(config.Database{Driver: config.DriverMemory})
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.Database)
	saved, err := app.Books.Save(context.Background(), &entities.Book{Title: "Dune"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), saved.ID)
}

func TestNewApp_SQLite(t *testing.T) {
	app, err := NewApp(config.Database{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "app.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.Database)
	_, err = app.Books.Save(context.Background(), &entities.Book{Title: "Dune"})
	require.NoError(t, err)

	books, err := app.Books.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestNewApp_UnknownDriver(t *testing.T) {
	_, err := NewApp(config.Database{Driver: "mongo"})

	assert.Error(t, err)
}

func TestNewRouterConfig(t *testing.T) {
	app, err := NewApp(config.Database{Driver: config.DriverMemory})
	require.NoError(t, err)

	cfg := &config.Config{
		Security: config.Security{CSRFSecret: "secret", SecureCookies: true},
		UI:       config.UI{TemplatesPath: "/views"},
	}

	routerCfg := NewRouterConfig(cfg, app, "1.2.3")

	assert.Nil(t, routerCfg.Database)
	assert.Equal(t, []byte("secret"), routerCfg.CSRFSecret)
	assert.True(t, routerCfg.SecureCookies)
	assert.Equal(t, "/views", routerCfg.TemplatesPath)
	assert.Equal(t, "1.2.3", routerCfg.Version)
}

func TestWiredRouter_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := NewApp(config.Database{
		Path:     filepath.Join(t.TempDir(), "e2e.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	defer app.Close()

	router := http_controllers.NewRouter(NewRouterConfig(&config.Config{}, app, "test"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database": "ok"`)
}
