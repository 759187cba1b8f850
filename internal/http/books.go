package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/security"
)

const booksPath = "/books"

var errInvalidBookID = errors.New("invalid book id")

// BooksController serves the server-rendered book pages.
type BooksController struct {
	service BookService
}

func NewBooksController(service BookService) *BooksController {
	return &BooksController{service: service}
}

// List renders every book.
// GET /books
func (controller *BooksController) List(c *gin.Context) {
	books, err := controller.service.FindAll(c.Request.Context())
	if err != nil {
		pageInternalError(c, err, "list books")
		return
	}

	c.HTML(http.StatusOK, "books", gin.H{
		"PageTitle":  "Books",
		"Books":      entities.NewBookDTOs(books),
		"TotalBooks": len(books),
	})
}

// NewForm renders the form bound to an empty book.
// GET /books/new
func (controller *BooksController) NewForm(c *gin.Context) {
	controller.renderForm(c, "New book", entities.BookDTO{})
}

// EditForm renders the form bound to an existing book.
// GET /books/edit?id=
func (controller *BooksController) EditForm(c *gin.Context) {
	id, ok := parseQueryIDPage(c, "id")
	if !ok {
		return
	}

	book, err := controller.service.FindByID(c.Request.Context(), id)
	if err != nil {
		pageInternalError(c, err, "load book")
		return
	}
	if book == nil {
		c.String(http.StatusNotFound, "Book not found")
		return
	}

	controller.renderForm(c, "Edit book", entities.NewBookDTO(*book))
}

// Save creates or overwrites a book from the submitted form and goes back to the list.
// POST /books
func (controller *BooksController) Save(c *gin.Context) {
	dto, err := parseBookForm(c)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid book ID")
		return
	}

	book := dto.ToEntity()
	if _, err := controller.service.Save(c.Request.Context(), &book); err != nil {
		pageInternalError(c, err, "save book")
		return
	}

	c.Redirect(http.StatusFound, booksPath)
}

// Delete removes the book named by the id query parameter and goes back to the list.
// An unknown id deletes nothing.
// GET /books/delete?id=
func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseQueryIDPage(c, "id")
	if !ok {
		return
	}

	if err := controller.service.DeleteByID(c.Request.Context(), id); err != nil {
		pageInternalError(c, err, "delete book")
		return
	}

	c.Redirect(http.StatusFound, booksPath)
}

func (controller *BooksController) renderForm(c *gin.Context, title string, book entities.BookDTO) {
	c.HTML(http.StatusOK, "book-form", gin.H{
		"PageTitle": title,
		"Book":      book,
		"CSRFField": security.CSRFTokenField(c),
	})
}

// parseBookForm copies the posted fields into a BookDTO one by one.
// A blank id means a new book.
func parseBookForm(c *gin.Context) (entities.BookDTO, error) {
	dto := entities.BookDTO{
		Title:  c.PostForm("title"),
		Author: c.PostForm("author"),
		ISBN:   c.PostForm("isbn"),
	}

	if raw := c.PostForm("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return entities.BookDTO{}, errInvalidBookID
		}
		dto.ID = id
	}

	return dto, nil
}
