package services

import (
	"errors"
	"math"

	"github.com/mrlokans/bookclub/internal/database/reviews"
	"github.com/mrlokans/bookclub/internal/entities"
)

// ErrInvalidRating is returned when a rating falls outside [1, 5].
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ReviewService handles book review operations.
type ReviewService struct {
	reviews ReviewStore
}

// NewReviewService creates a new review service.
func NewReviewService(store ReviewStore) *ReviewService {
	return &ReviewService{reviews: store}
}

// GetBookReviews returns all reviews for a book.
func (s *ReviewService) GetBookReviews(bookID uint) ([]entities.Review, error) {
	return s.reviews.GetByBookID(bookID)
}

// GetUserReview returns the account's review for a book, or (nil, nil).
func (s *ReviewService) GetUserReview(accountID, bookID uint) (*entities.Review, error) {
	return s.reviews.GetUserReview(accountID, bookID)
}

// AddReview validates the rating and rejects exact repeats of an earlier
// submission before inserting. A repeat returns reviews.ErrDuplicateReview;
// the same user may still post a review with different content for the
// same book.
func (s *ReviewService) AddReview(accountID, bookID uint, rating float64, title, text string) error {
	// NaN compares false against both bounds, so it needs its own check.
	if math.IsNaN(rating) || rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	review := &entities.Review{
		AccountID:   accountID,
		BookID:      bookID,
		RatingScore: rating,
		ReviewTitle: title,
		ReviewText:  text,
	}

	exists, err := s.reviews.ExistsExact(review)
	if err != nil {
		return err
	}
	if exists {
		return reviews.ErrDuplicateReview
	}

	return s.reviews.Create(review)
}
