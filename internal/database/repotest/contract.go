// Package repotest holds behaviour checks shared by every BookRepository
// implementation.
package repotest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/services"
)

// Factory returns an empty repository for a single subtest.
type Factory func(t *testing.T) services.BookRepository

// RunBookRepositoryTests exercises the storage contract against repositories
// produced by newRepo.
func RunBookRepositoryTests(t *testing.T, newRepo Factory) {
	ctx := context.Background()

	t.Run("FindAll on empty store returns empty slice", func(t *testing.T) {
		repo := newRepo(t)

		books, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})

	t.Run("Save without ID assigns a new ID", func(t *testing.T) {
		repo := newRepo(t)

		first, err := repo.Save(ctx, &entities.Book{Title: "Dune", Author: "Herbert", ISBN: "123"})
		require.NoError(t, err)
		second, err := repo.Save(ctx, &entities.Book{Title: "Solaris", Author: "Lem", ISBN: "456"})
		require.NoError(t, err)

		assert.Equal(t, uint(1), first.ID)
		assert.Equal(t, uint(2), second.ID)

		books, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Equal(t, "Solaris", books[1].Title)
	})

	t.Run("Save with existing ID overwrites without duplicating", func(t *testing.T) {
		repo := newRepo(t)
		saved, err := repo.Save(ctx, &entities.Book{Title: "Dune", Author: "Herbert", ISBN: "123"})
		require.NoError(t, err)

		_, err = repo.Save(ctx, &entities.Book{ID: saved.ID, Title: "Dune Messiah", Author: "Frank Herbert", ISBN: "789"})
		require.NoError(t, err)

		books, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, saved.ID, books[0].ID)
		assert.Equal(t, "Dune Messiah", books[0].Title)
		assert.Equal(t, "Frank Herbert", books[0].Author)
		assert.Equal(t, "789", books[0].ISBN)
	})

	t.Run("Save with unknown ID inserts under that ID", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Save(ctx, &entities.Book{ID: 10, Title: "Hyperion"})
		require.NoError(t, err)
		next, err := repo.Save(ctx, &entities.Book{Title: "Endymion"})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, 10)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Hyperion", found.Title)
		assert.NotEqual(t, uint(10), next.ID)
	})

	t.Run("FindByID returns exact fields", func(t *testing.T) {
		repo := newRepo(t)
		saved, err := repo.Save(ctx, &entities.Book{Title: "Dune", Author: "Herbert", ISBN: "123"})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID)

		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, saved.ID, found.ID)
		assert.Equal(t, "Dune", found.Title)
		assert.Equal(t, "Herbert", found.Author)
		assert.Equal(t, "123", found.ISBN)
	})

	t.Run("FindByID on missing ID returns nil without error", func(t *testing.T) {
		repo := newRepo(t)

		found, err := repo.FindByID(ctx, 999)

		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("DeleteByID removes exactly that record", func(t *testing.T) {
		repo := newRepo(t)
		a, err := repo.Save(ctx, &entities.Book{Title: "A"})
		require.NoError(t, err)
		b, err := repo.Save(ctx, &entities.Book{Title: "B"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteByID(ctx, a.ID))

		books, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, b.ID, books[0].ID)
	})

	t.Run("DeleteByID on missing ID changes nothing", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Save(ctx, &entities.Book{Title: "A"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteByID(ctx, 999))

		books, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("save then delete round trip", func(t *testing.T) {
		repo := newRepo(t)

		saved, err := repo.Save(ctx, &entities.Book{Title: "Dune", Author: "Herbert", ISBN: "123"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), saved.ID)

		books, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Dune", books[0].Title)

		require.NoError(t, repo.DeleteByID(ctx, 1))

		books, err = repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}
