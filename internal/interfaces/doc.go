// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookRepository: storage contract for books (internal/services/interfaces.go),
//     implemented by the gorm repository (internal/database/books) and the
//     in-memory repository (internal/database/memory)
//
// ## HTTP Interfaces
//
//   - BookService: what controllers need from the service layer (internal/http/stores.go)
//   - Pinger: database reachability for /health (internal/http/stores.go)
//
// # Adding a New Storage Backend
//
//  1. Create a package under internal/database/
//  2. Implement services.BookRepository; FindByID must return nil, nil for
//     missing books and DeleteByID must ignore unknown IDs
//  3. Run repotest.RunBookRepositoryTests against it
//  4. Add a compile-time check in checks.go
//  5. Select it in entrypoint.NewApp
package interfaces
