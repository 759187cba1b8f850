package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// BooksAPIController exposes books as JSON, always in their DTO shape.
type BooksAPIController struct {
	service BookService
}

func NewBooksAPIController(service BookService) *BooksAPIController {
	return &BooksAPIController{service: service}
}

// GET /api/books
func (controller *BooksAPIController) GetAllBooks(c *gin.Context) {
	books, err := controller.service.FindAll(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": entities.NewBookDTOs(books), "count": len(books)})
}

// GET /api/books/:id
func (controller *BooksAPIController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	c.IndentedJSON(http.StatusOK, entities.NewBookDTO(*book))
}
