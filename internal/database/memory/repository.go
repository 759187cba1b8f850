// Package memory keeps books in process memory. Nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type Repository struct {
	mu     sync.RWMutex
	books  map[uint]entities.Book
	lastID uint
}

func NewRepository() *Repository {
	return &Repository{books: make(map[uint]entities.Book)}
}

func (r *Repository) FindAll(ctx context.Context) ([]entities.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]entities.Book, 0, len(r.books))
	for _, book := range r.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return nil, nil
	}
	return &book, nil
}

// Save assigns the next sequential ID to new books. An explicit ID above the
// counter moves the counter forward so later inserts cannot collide.
func (r *Repository) Save(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if book.ID == 0 {
		r.lastID++
		book.ID = r.lastID
	} else if book.ID > r.lastID {
		r.lastID = book.ID
	}

	if existing, ok := r.books[book.ID]; ok {
		book.CreatedAt = existing.CreatedAt
	} else {
		book.CreatedAt = now
	}
	book.UpdatedAt = now

	r.books[book.ID] = *book
	return book, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.books, id)
	return nil
}
