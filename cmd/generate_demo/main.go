// Command generate_demo creates a demo database filled with public domain books.
// Usage: go run ./cmd/generate_demo [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/services"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	if err := resetDatabaseFile(*dbPath); err != nil {
		log.Fatalf("Failed to prepare demo database: %v", err)
	}

	db, err := database.NewDatabase(config.Database{Driver: config.DriverSQLite, Path: *dbPath})
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	service := services.NewBookService(books.NewRepository(db.DB))
	saved := seed(context.Background(), service, publicDomainBooks())

	log.Printf("Demo database generated successfully with %d books!", saved)
}

// resetDatabaseFile removes any previous demo database and makes sure its
// directory exists, since sqlite will not create it.
func resetDatabaseFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// seed saves each book and returns how many were stored.
func seed(ctx context.Context, service *services.BookService, demo []entities.BookDTO) int {
	saved := 0
	for _, dto := range demo {
		book := dto.ToEntity()
		if _, err := service.Save(ctx, &book); err != nil {
			log.Printf("Failed to save book %s: %v", dto.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s", book.Title, book.Author)
		saved++
	}
	return saved
}

func publicDomainBooks() []entities.BookDTO {
	return []entities.BookDTO{
		{Title: "Meditations", Author: "Marcus Aurelius", ISBN: "9780140449334"},
		{Title: "Pride and Prejudice", Author: "Jane Austen", ISBN: "9780141439518"},
		{Title: "Moby-Dick", Author: "Herman Melville", ISBN: "9780142437247"},
		{Title: "Frankenstein", Author: "Mary Shelley", ISBN: "9780141439471"},
		{Title: "The Time Machine", Author: "H. G. Wells", ISBN: "9780141439976"},
	}
}
