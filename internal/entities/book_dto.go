package entities

// BookDTO is the form and wire shape of a Book. It carries no persistence
// metadata, so controllers never hand gorm models to templates or clients.
type BookDTO struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// NewBookDTO copies the boundary fields of a book.
func NewBookDTO(book Book) BookDTO {
	return BookDTO{
		ID:     book.ID,
		Title:  book.Title,
		Author: book.Author,
		ISBN:   book.ISBN,
	}
}

// NewBookDTOs maps a slice of books, never returning nil.
func NewBookDTOs(books []Book) []BookDTO {
	dtos := make([]BookDTO, len(books))
	for i, book := range books {
		dtos[i] = NewBookDTO(book)
	}
	return dtos
}

// ToEntity builds the Book to persist. ID 0 means the book is new.
func (dto BookDTO) ToEntity() Book {
	return Book{
		ID:     dto.ID,
		Title:  dto.Title,
		Author: dto.Author,
		ISBN:   dto.ISBN,
	}
}

// IsNew reports whether the DTO describes a book that has not been saved.
func (dto BookDTO) IsNew() bool {
	return dto.ID == 0
}
