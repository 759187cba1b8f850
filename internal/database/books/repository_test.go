package books

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/repotest"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/services"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "books.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB)
}

func TestRepository_Contract(t *testing.T) {
	repotest.RunBookRepositoryTests(t, func(t *testing.T) services.BookRepository {
		return setupTestRepo(t)
	})
}

func TestRepository_SaveKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	saved, err := repo.Save(ctx, &entities.Book{Title: "Dune"})
	require.NoError(t, err)
	created := saved.CreatedAt
	require.False(t, created.IsZero())

	time.Sleep(10 * time.Millisecond)
	updated, err := repo.Save(ctx, &entities.Book{ID: saved.ID, Title: "Dune Messiah"})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, created, found.CreatedAt, time.Millisecond)
	assert.True(t, updated.UpdatedAt.After(created))
}

func TestRepository_CancelledContext(t *testing.T) {
	repo := setupTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindAll(ctx)

	assert.Error(t, err)
}
