package http

import (
	"context"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookService is what the book controllers need from the service layer.
type BookService interface {
	FindAll(ctx context.Context) ([]entities.Book, error)
	FindByID(ctx context.Context, id uint) (*entities.Book, error)
	Save(ctx context.Context, book *entities.Book) (*entities.Book, error)
	DeleteByID(ctx context.Context, id uint) error
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping() error
}
