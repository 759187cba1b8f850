package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mrlokans/bookshelf/internal/config"
)

type ListBooksCommand struct {
	Database config.Database
	Out      io.Writer
}

func NewListBooksCommand(db config.Database) *ListBooksCommand {
	return &ListBooksCommand{Database: db, Out: os.Stdout}
}

func (cmd *ListBooksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list-books", flag.ContinueOnError)

	fs.StringVar(&cmd.Database.Path, "db", cmd.Database.Path, "Path to the SQLite database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list-books [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print every stored book.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ListBooksCommand) Run() error {
	app, err := openApp(cmd.Database)
	if err != nil {
		return err
	}
	defer app.Close()

	books, err := app.Books.FindAll(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	w := tabwriter.NewWriter(cmd.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tISBN")
	for _, book := range books {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", book.ID, book.Title, book.Author, book.ISBN)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.Out, "\n%d book(s)\n", len(books))
	return nil
}
