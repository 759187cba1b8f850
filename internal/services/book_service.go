package services

import (
	"context"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookService is the application-facing entry point for books.
// It adds no rules of its own; every call goes straight to the repository.
type BookService struct {
	repo BookRepository
}

func NewBookService(repo BookRepository) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) FindAll(ctx context.Context) ([]entities.Book, error) {
	return s.repo.FindAll(ctx)
}

// FindByID returns nil without an error when the book does not exist.
func (s *BookService) FindByID(ctx context.Context, id uint) (*entities.Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Save inserts the book when its ID is zero and overwrites it otherwise.
func (s *BookService) Save(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	return s.repo.Save(ctx, book)
}

func (s *BookService) DeleteByID(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}
