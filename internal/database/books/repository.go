// Package books provides catalog-store database operations for books.
//
// # Usage
//
//	repo := books.NewRepository(stores.Catalog.DB)
//	book, err := repo.GetByID(id)
package books

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookclub/internal/entities"
)

// ErrDuplicateBook is returned by Create when a book with the same
// title and author already exists.
var ErrDuplicateBook = errors.New("book already exists")

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a book by primary key. Returns (nil, nil) when the
// book does not exist; absence is not an error.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll returns every book in natural row order.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Find(&books).Error
	return books, err
}

// Create inserts a book unless one with the same (title, author) pair
// already exists, in which case ErrDuplicateBook is returned and nothing
// is inserted. The pre-check is backed by a unique index on the pair, so
// two concurrent creates cannot both succeed: the loser's constraint
// violation is translated to ErrDuplicateBook as well.
func (r *Repository) Create(book *entities.Book) error {
	var existing entities.Book
	err := r.db.Where("title = ? AND author = ?", book.Title, book.Author).First(&existing).Error
	if err == nil {
		return ErrDuplicateBook
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing book: %w", err)
	}

	if err := r.db.Create(book).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateBook
		}
		return err
	}
	return nil
}
