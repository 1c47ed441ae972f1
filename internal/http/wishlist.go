package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/database/wishlist"
	"github.com/mrlokans/bookclub/internal/services"
)

// WishlistController exposes the signed-in user's wishlist over JSON.
type WishlistController struct {
	wishlist *services.WishlistService
}

// NewWishlistController creates a new wishlist controller.
func NewWishlistController(svc *services.WishlistService) *WishlistController {
	return &WishlistController{wishlist: svc}
}

// GetWishlist returns the user's wishlist resolved to full books.
func (controller *WishlistController) GetWishlist(c *gin.Context) {
	books, err := controller.wishlist.GetUserWishlist(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "get wishlist")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// addWishlistRequest is the payload for adding a wishlist entry.
type addWishlistRequest struct {
	BookID uint `form:"book_id" json:"book_id"`
}

// AddToWishlist puts a catalogue book on the user's wishlist. A book
// that does not exist and a pair that is already present both fail.
func (controller *WishlistController) AddToWishlist(c *gin.Context) {
	var req addWishlistRequest
	if err := c.ShouldBind(&req); err != nil || req.BookID == 0 {
		respondBadRequest(c, "book_id is required")
		return
	}

	err := controller.wishlist.AddToWishlist(GetUserID(c), req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookNotFound):
			respondNotFound(c, "book")
		case errors.Is(err, wishlist.ErrDuplicateEntry):
			respondBadRequest(c, "book already on wishlist")
		default:
			respondInternalError(c, err, "add to wishlist")
		}
		return
	}

	respondCreated(c, "added to wishlist")
}
