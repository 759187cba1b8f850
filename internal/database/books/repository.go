// Package books provides gorm-backed storage for book records.
//
// # Interface Implementation
//
//	var _ services.BookRepository = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db.DB)
//	book, err := repo.FindByID(ctx, 123)
package books

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindAll retrieves every book ordered by ID.
func (r *Repository) FindAll(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}
	return books, nil
}

// FindByID retrieves a book by its ID. A missing book is not an error.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load book %d: %w", id, err)
	}
	return &book, nil
}

// Save inserts the book when ID is zero, otherwise upserts it by primary key.
// The assigned ID is written back into book.
func (r *Repository) Save(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	db := r.db.WithContext(ctx)

	if book.ID == 0 {
		if err := db.Create(book).Error; err != nil {
			return nil, fmt.Errorf("failed to create book: %w", err)
		}
		return book, nil
	}

	// Keep the original creation time on overwrite.
	var existing entities.Book
	err := db.Select("created_at").First(&existing, book.ID).Error
	switch {
	case err == nil:
		book.CreatedAt = existing.CreatedAt
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to load book %d: %w", book.ID, err)
	}

	if err := db.Save(book).Error; err != nil {
		return nil, fmt.Errorf("failed to save book %d: %w", book.ID, err)
	}
	return book, nil
}

// DeleteByID removes the book with the given ID. Unknown IDs delete nothing.
func (r *Repository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entities.Book{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}
