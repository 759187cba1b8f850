package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/memory"
	"github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BookRepository implementations
var _ services.BookRepository = (*books.Repository)(nil)
var _ services.BookRepository = (*memory.Repository)(nil)

// Health checks
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Service Layer
// =============================================================================

var _ http.BookService = (*services.BookService)(nil)
