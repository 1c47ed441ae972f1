// Package reviews provides catalog-store database operations for book reviews.
package reviews

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookclub/internal/entities"
)

// ErrDuplicateReview is returned by Create when an identical review
// (same account, book, rating, title and text) already exists.
var ErrDuplicateReview = errors.New("review already exists")

// Repository handles all review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByBookID returns all reviews for a book in natural row order.
func (r *Repository) GetByBookID(bookID uint) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Where("book_id = ?", bookID).Find(&reviews).Error
	return reviews, err
}

// GetUserReview returns the first review the account posted for the book,
// or (nil, nil) when there is none.
func (r *Repository) GetUserReview(accountID, bookID uint) (*entities.Review, error) {
	var review entities.Review
	err := r.db.Where("account_id = ? AND book_id = ?", accountID, bookID).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ExistsExact reports whether a review with exactly the same content
// already exists. The comparison covers every user-supplied field, so a
// user may still post several distinct reviews for the same book.
func (r *Repository) ExistsExact(review *entities.Review) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Review{}).
		Where("account_id = ? AND book_id = ? AND rating_score = ? AND review_title = ? AND review_text = ?",
			review.AccountID, review.BookID, review.RatingScore, review.ReviewTitle, review.ReviewText).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing review: %w", err)
	}
	return count > 0, nil
}

// Create inserts a review. The duplicate-content pre-check belongs to the
// service layer; the composite unique index over the content columns still
// rejects an exact repeat that races past it, surfacing as
// ErrDuplicateReview.
func (r *Repository) Create(review *entities.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateReview
		}
		return err
	}
	return nil
}
