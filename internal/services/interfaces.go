package services

import "github.com/mrlokans/bookclub/internal/entities"

// BookStore is the slice of the books repository the services need.
// Implemented by books.Repository.
type BookStore interface {
	GetByID(id uint) (*entities.Book, error)
	GetAll() ([]entities.Book, error)
	Create(book *entities.Book) error
}

// ReviewStore is the slice of the reviews repository the review service
// needs. Implemented by reviews.Repository.
type ReviewStore interface {
	GetByBookID(bookID uint) ([]entities.Review, error)
	GetUserReview(accountID, bookID uint) (*entities.Review, error)
	ExistsExact(review *entities.Review) (bool, error)
	Create(review *entities.Review) error
}

// WishlistStore is the slice of the wishlist repository the wishlist
// service needs. Implemented by wishlist.Repository.
type WishlistStore interface {
	GetByUser(accountID uint) ([]entities.WishlistEntry, error)
	Create(entry *entities.WishlistEntry) error
}
