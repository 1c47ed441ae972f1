package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/auth"
	"github.com/mrlokans/bookclub/internal/config"
	"github.com/mrlokans/bookclub/internal/database"
	"github.com/mrlokans/bookclub/internal/demo"
	"github.com/mrlokans/bookclub/internal/services"
)

// RouterConfig carries every dependency the router wires together.
type RouterConfig struct {
	Stores          *database.Stores
	BookService     *services.BookService
	ReviewService   *services.ReviewService
	WishlistService *services.WishlistService

	AuthService    *auth.Service
	AuthConfig     config.Auth
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	DemoMiddleware *demo.Middleware
	CSRFSecret     []byte
	SecureCookies  bool

	TemplatesPath string
	StaticPath    string
	Version       string
}

// NewRouter builds the gin engine with all middleware and routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is layered on
	// top of CSRF's request replacement.
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	if cfg.DemoMiddleware != nil {
		router.Use(cfg.DemoMiddleware.Handler())
	}

	// Load page templates; auth templates are owned by the auth controller
	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.Static("/static", cfg.StaticPath)

	// Auth pages
	if cfg.AuthService != nil {
		authController := auth.NewController(cfg.AuthService, cfg.SessionManager, cfg.TemplatesPath, cfg.AuthConfig)
		authController.RegisterRoutes(router)
	}

	// HTML pages
	uiController := NewUIController(cfg.BookService, cfg.ReviewService)
	router.GET("/", uiController.IndexPage)
	router.GET("/dashboard", uiController.DashboardPage)
	router.GET("/books", uiController.BooksPage)
	router.GET("/books/:id", uiController.BookPage)

	// JSON API
	booksController := NewBooksController(cfg.BookService)
	reviewsController := NewReviewsController(cfg.ReviewService)
	wishlistController := NewWishlistController(cfg.WishlistService)

	api := router.Group("/api")
	{
		api.GET("/books", booksController.GetAllBooks)
		api.POST("/books", booksController.AddBook)
		api.GET("/books/:id", booksController.GetBookByID)
		api.GET("/books/:id/reviews", reviewsController.GetBookReviews)
		api.POST("/books/:id/reviews", reviewsController.AddReview)
		api.GET("/books/:id/reviews/mine", reviewsController.GetUserReview)
		api.GET("/wishlist", wishlistController.GetWishlist)
		api.POST("/wishlist", wishlistController.AddToWishlist)
	}

	// Health check
	healthController := NewHealthController(cfg.Stores, cfg.Version)
	router.GET("/health", healthController.Status)

	return router
}
