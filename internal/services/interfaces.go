package services

import (
	"context"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookRepository is the storage contract for books.
// FindByID returns nil, nil when no book has the given ID, and DeleteByID
// is a no-op for unknown IDs.
type BookRepository interface {
	FindAll(ctx context.Context) ([]entities.Book, error)
	FindByID(ctx context.Context, id uint) (*entities.Book, error)
	Save(ctx context.Context, book *entities.Book) (*entities.Book, error)
	DeleteByID(ctx context.Context, id uint) error
}
