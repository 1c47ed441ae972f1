package services

import (
	"errors"

	"github.com/mrlokans/bookclub/internal/entities"
)

// ErrBookNotFound is returned when a wishlist operation references a book
// that does not exist in the catalog store.
var ErrBookNotFound = errors.New("book not found")

// WishlistService handles wishlist operations. It spans both stores:
// entries live in the account store, the books they reference in the
// catalog store.
type WishlistService struct {
	wishlist WishlistStore
	books    BookStore
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(wishlist WishlistStore, books BookStore) *WishlistService {
	return &WishlistService{wishlist: wishlist, books: books}
}

// AddToWishlist adds a book to the account's wishlist after confirming
// the book exists in the catalogue. Duplicate pairs surface as
// wishlist.ErrDuplicateEntry from the repository.
func (s *WishlistService) AddToWishlist(accountID, bookID uint) error {
	book, err := s.books.GetByID(bookID)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}

	return s.wishlist.Create(&entities.WishlistEntry{AccountID: accountID, BookID: bookID})
}

// GetUserWishlist resolves the account's wishlist entries to full books.
// Entries whose book cannot be found in the catalog store are skipped:
// the stores share no referential integrity, so a dangling book_id is
// tolerated rather than fatal.
func (s *WishlistService) GetUserWishlist(accountID uint) ([]entities.Book, error) {
	entries, err := s.wishlist.GetByUser(accountID)
	if err != nil {
		return nil, err
	}

	books := make([]entities.Book, 0, len(entries))
	for _, entry := range entries {
		book, err := s.books.GetByID(entry.BookID)
		if err != nil {
			return nil, err
		}
		if book != nil {
			books = append(books, *book)
		}
	}
	return books, nil
}
