// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres) and migrations
//	├── books/           # gorm-backed book repository
//	├── memory/          # map-backed book repository, no persistence
//	└── repotest/        # behaviour checks shared by both repositories
//
// # Usage
//
//	db, err := database.NewDatabase(cfg.Database)
//	repo := books.NewRepository(db.DB)
//	book, err := repo.FindByID(ctx, 123)
package database
