package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/database/books"
	"github.com/mrlokans/bookclub/internal/services"
)

// BooksController exposes the catalogue over JSON.
type BooksController struct {
	books *services.BookService
}

// NewBooksController creates a new books controller.
func NewBooksController(svc *services.BookService) *BooksController {
	return &BooksController{books: svc}
}

// GetAllBooks returns the full catalogue.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	all, err := controller.books.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": all, "count": len(all)})
}

// GetBookByID returns a single book or 404.
func (controller *BooksController) GetBookByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.books.GetBook(id)
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	c.IndentedJSON(http.StatusOK, book)
}

// addBookRequest is the payload for creating a book. Both form posts and
// JSON bodies are accepted.
type addBookRequest struct {
	Title  string `form:"title" json:"title"`
	Author string `form:"author" json:"author"`
}

// AddBook adds a book to the catalogue. Blank fields and duplicate
// (title, author) pairs both collapse to a generic failure, matching
// the boolean contract of the data layer.
func (controller *BooksController) AddBook(c *gin.Context) {
	var req addBookRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "title and author are required")
		return
	}

	if err := controller.books.AddBook(req.Title, req.Author); err != nil {
		switch {
		case errors.Is(err, services.ErrBlankField):
			respondBadRequest(c, "title and author must not be blank")
		case errors.Is(err, books.ErrDuplicateBook):
			respondBadRequest(c, "failed to add book, already exists")
		default:
			respondInternalError(c, err, "add book")
		}
		return
	}

	respondCreated(c, "book added")
}
