// Package wishlist provides account-store database operations for wishlist entries.
package wishlist

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookclub/internal/entities"
)

// ErrDuplicateEntry is returned by Create when the account already has
// the book on its wishlist.
var ErrDuplicateEntry = errors.New("book already on wishlist")

// Repository handles all wishlist database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new wishlist repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByUser returns the account's wishlist entries in natural row order.
func (r *Repository) GetByUser(accountID uint) ([]entities.WishlistEntry, error) {
	var entries []entities.WishlistEntry
	err := r.db.Where("account_id = ?", accountID).Find(&entries).Error
	return entries, err
}

// Create inserts a wishlist entry unless the (account, book) pair is
// already present, in which case ErrDuplicateEntry is returned and
// nothing is inserted. The pair carries a unique index, so a concurrent
// duplicate insert also resolves to ErrDuplicateEntry.
func (r *Repository) Create(entry *entities.WishlistEntry) error {
	var existing entities.WishlistEntry
	err := r.db.Where("account_id = ? AND book_id = ?", entry.AccountID, entry.BookID).First(&existing).Error
	if err == nil {
		return ErrDuplicateEntry
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing wishlist entry: %w", err)
	}

	if err := r.db.Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEntry
		}
		return err
	}
	return nil
}
