package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/database/reviews"
	"github.com/mrlokans/bookclub/internal/services"
)

// ReviewsController exposes book reviews over JSON.
type ReviewsController struct {
	reviews *services.ReviewService
}

// NewReviewsController creates a new reviews controller.
func NewReviewsController(svc *services.ReviewService) *ReviewsController {
	return &ReviewsController{reviews: svc}
}

// GetBookReviews returns all reviews for a book.
func (controller *ReviewsController) GetBookReviews(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	all, err := controller.reviews.GetBookReviews(bookID)
	if err != nil {
		respondInternalError(c, err, "list reviews")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"reviews": all, "count": len(all)})
}

// GetUserReview returns the signed-in user's review for a book, or 404.
func (controller *ReviewsController) GetUserReview(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := controller.reviews.GetUserReview(GetUserID(c), bookID)
	if err != nil {
		respondInternalError(c, err, "get user review")
		return
	}
	if review == nil {
		respondNotFound(c, "review")
		return
	}

	c.IndentedJSON(http.StatusOK, review)
}

// addReviewRequest is the payload for posting a review.
type addReviewRequest struct {
	Rating float64 `form:"rating" json:"rating"`
	Title  string  `form:"review_title" json:"review_title"`
	Text   string  `form:"review_text" json:"review_text"`
}

// AddReview posts a review for a book on behalf of the signed-in user.
func (controller *ReviewsController) AddReview(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req addReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "rating must be numeric")
		return
	}

	err := controller.reviews.AddReview(GetUserID(c), bookID, req.Rating, req.Title, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			respondBadRequest(c, "rating must be between 1 and 5")
		case errors.Is(err, reviews.ErrDuplicateReview):
			respondBadRequest(c, "could not add review, possibly already added")
		default:
			respondInternalError(c, err, "add review")
		}
		return
	}

	respondCreated(c, "review added")
}
