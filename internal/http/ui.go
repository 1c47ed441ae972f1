package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/auth"
	"github.com/mrlokans/bookclub/internal/services"
)

// UIController renders the server-side HTML pages. Forms on the pages
// post to the JSON API endpoints.
type UIController struct {
	books   *services.BookService
	reviews *services.ReviewService
}

// NewUIController creates a new UI controller.
func NewUIController(books *services.BookService, reviews *services.ReviewService) *UIController {
	return &UIController{books: books, reviews: reviews}
}

// IndexPage routes to the dashboard for signed-in users and to the
// sign-in form otherwise.
func (controller *UIController) IndexPage(c *gin.Context) {
	if GetUserID(c) != 0 {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// DashboardPage renders the landing page for signed-in users.
func (controller *UIController) DashboardPage(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":    "Dashboard",
		"Username": auth.GetUsername(c),
	})
}

// BooksPage renders the shared catalogue.
func (controller *UIController) BooksPage(c *gin.Context) {
	books, err := controller.books.GetAllBooks()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "books.html", gin.H{
		"Title":     "Books",
		"Books":     books,
		"CSRFToken": auth.GetCSRFToken(c),
	})
}

// BookPage renders a single book's description page with its reviews.
func (controller *UIController) BookPage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.books.GetBook(id)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading book: %s", err.Error())
		return
	}
	if book == nil {
		c.String(http.StatusNotFound, "Book not found")
		return
	}

	reviews, err := controller.reviews.GetBookReviews(book.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading reviews: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "description.html", gin.H{
		"Title":     book.Title,
		"Book":      book,
		"Reviews":   reviews,
		"CSRFToken": auth.GetCSRFToken(c),
	})
}
