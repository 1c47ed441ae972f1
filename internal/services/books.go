// Package services contains the thin orchestration layer between HTTP
// controllers and the repositories. Services re-validate business rules
// (blank fields, rating ranges, cross-entity existence) and delegate
// everything else to their repositories.
package services

import (
	"errors"
	"strings"

	"github.com/mrlokans/bookclub/internal/entities"
)

// ErrBlankField is returned when a required text field is empty or
// whitespace-only.
var ErrBlankField = errors.New("required field is blank")

// BookService handles catalogue operations.
type BookService struct {
	books BookStore
}

// NewBookService creates a new book service.
func NewBookService(books BookStore) *BookService {
	return &BookService{books: books}
}

// GetBook returns a single book by ID, or (nil, nil) if absent.
func (s *BookService) GetBook(id uint) (*entities.Book, error) {
	return s.books.GetByID(id)
}

// GetAllBooks returns the full catalogue.
func (s *BookService) GetAllBooks() ([]entities.Book, error) {
	return s.books.GetAll()
}

// AddBook adds a new book. Title and author are trimmed; blank values are
// rejected before reaching the repository. Duplicate (title, author)
// pairs surface as books.ErrDuplicateBook from the repository.
func (s *BookService) AddBook(title, author string) error {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" || author == "" {
		return ErrBlankField
	}

	return s.books.Create(&entities.Book{Title: title, Author: author})
}
