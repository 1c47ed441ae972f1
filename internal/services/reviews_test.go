package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookclub/internal/database/reviews"
)

func setupReviewService(t *testing.T) (*ReviewService, func()) {
	db, cleanup := setupCatalogDB(t)
	return NewReviewService(reviews.NewRepository(db)), cleanup
}

func TestReviewService_AddReview(t *testing.T) {
	svc, cleanup := setupReviewService(t)
	defer cleanup()

	err := svc.AddReview(1, 1, 4.5, "A classic", "Holds up on every reread.")
	require.NoError(t, err)

	all, err := svc.GetBookReviews(1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 4.5, all[0].RatingScore)
}

func TestReviewService_AddReview_RatingBounds(t *testing.T) {
	svc, cleanup := setupReviewService(t)
	defer cleanup()

	tests := []struct {
		name    string
		rating  float64
		wantErr error
	}{
		{"below minimum", 0.99, ErrInvalidRating},
		{"at minimum", 1.0, nil},
		{"at maximum", 5.0, nil},
		{"above maximum", 5.01, ErrInvalidRating},
		{"zero", 0, ErrInvalidRating},
		{"negative", -1, ErrInvalidRating},
		{"not a number", math.NaN(), ErrInvalidRating},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Distinct book per case so the duplicate check never fires.
			err := svc.AddReview(1, uint(i+1), tt.rating, "Title", "Text")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_AddReview_ExactDuplicate(t *testing.T) {
	svc, cleanup := setupReviewService(t)
	defer cleanup()

	require.NoError(t, svc.AddReview(1, 1, 4, "A classic", "Holds up."))

	err := svc.AddReview(1, 1, 4, "A classic", "Holds up.")
	assert.ErrorIs(t, err, reviews.ErrDuplicateReview)

	all, err := svc.GetBookReviews(1)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestReviewService_AddReview_SameBookDifferentContent(t *testing.T) {
	svc, cleanup := setupReviewService(t)
	defer cleanup()

	require.NoError(t, svc.AddReview(1, 1, 4, "First read", "Good."))
	require.NoError(t, svc.AddReview(1, 1, 5, "Second read", "Even better."))

	all, err := svc.GetBookReviews(1)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReviewService_GetUserReview(t *testing.T) {
	svc, cleanup := setupReviewService(t)
	defer cleanup()

	require.NoError(t, svc.AddReview(1, 1, 4, "Mine", "My take."))
	require.NoError(t, svc.AddReview(2, 1, 2, "Theirs", "Their take."))

	review, err := svc.GetUserReview(1, 1)
	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, "Mine", review.ReviewTitle)

	none, err := svc.GetUserReview(3, 1)
	require.NoError(t, err)
	assert.Nil(t, none)
}
