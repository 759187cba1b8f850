package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entities"
)

type AddBookCommand struct {
	Database config.Database
	Book     entities.BookDTO
	Out      io.Writer
}

func NewAddBookCommand(db config.Database) *AddBookCommand {
	return &AddBookCommand{Database: db, Out: os.Stdout}
}

func (cmd *AddBookCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add-book", flag.ContinueOnError)

	var id uint
	fs.StringVar(&cmd.Database.Path, "db", cmd.Database.Path, "Path to the SQLite database file")
	fs.UintVar(&id, "id", 0, "Existing book ID to overwrite (0 creates a new book)")
	fs.StringVar(&cmd.Book.Title, "title", "", "Book title")
	fs.StringVar(&cmd.Book.Author, "author", "", "Book author")
	fs.StringVar(&cmd.Book.ISBN, "isbn", "", "Book ISBN")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add-book [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Save a book, creating it or overwriting an existing ID.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s add-book -title Dune -author Herbert -isbn 123\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s add-book -id 1 -title \"Dune Messiah\" -author Herbert\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	cmd.Book.ID = id
	return nil
}

func (cmd *AddBookCommand) Run() error {
	app, err := openApp(cmd.Database)
	if err != nil {
		return err
	}
	defer app.Close()

	book := cmd.Book.ToEntity()
	saved, err := app.Books.Save(context.Background(), &book)
	if err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}

	fmt.Fprintf(cmd.Out, "Saved book %d: %s\n", saved.ID, saved.Title)
	return nil
}
