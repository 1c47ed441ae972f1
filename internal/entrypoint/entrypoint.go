package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookclub/internal/auth"
	"github.com/mrlokans/bookclub/internal/config"
	"github.com/mrlokans/bookclub/internal/database"
	"github.com/mrlokans/bookclub/internal/database/books"
	"github.com/mrlokans/bookclub/internal/database/reviews"
	"github.com/mrlokans/bookclub/internal/database/users"
	"github.com/mrlokans/bookclub/internal/database/wishlist"
	"github.com/mrlokans/bookclub/internal/demo"
	http_controllers "github.com/mrlokans/bookclub/internal/http"
	"github.com/mrlokans/bookclub/internal/services"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires stores, repositories, services and the router together and
// serves the application.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookclub v%s", version)

	stores, err := database.NewStores(database.Config{
		CatalogPath:  cfg.Database.CatalogPath,
		AccountsPath: cfg.Database.AccountsPath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize stores: %v", err)
	}
	defer func() {
		if err := stores.Close(); err != nil {
			log.Printf("Error closing stores: %v", err)
		}
	}()

	// Repositories, one per entity, each bound to its owning store
	booksRepo := books.NewRepository(stores.Catalog.DB)
	reviewsRepo := reviews.NewRepository(stores.Catalog.DB)
	usersRepo := users.NewRepository(stores.Accounts.DB)
	wishlistRepo := wishlist.NewRepository(stores.Accounts.DB)

	// Services
	bookService := services.NewBookService(booksRepo)
	reviewService := services.NewReviewService(reviewsRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, booksRepo)
	authService := auth.NewService(usersRepo, cfg.Auth)

	// Sessions live in the account store
	sqlDB, err := stores.Accounts.SQLDB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	authMiddleware := auth.NewMiddleware(authService, sessionManager)

	demoMiddleware := demo.NewMiddleware(cfg.Global.DemoMode)
	if demoMiddleware.IsEnabled() {
		log.Printf("Demo mode enabled, write operations are disabled")
	}

	// CSRF secret: configured or generated per process
	var csrfSecret []byte
	if cfg.Auth.SessionSecret != "" {
		csrfSecret, err = hex.DecodeString(cfg.Auth.SessionSecret)
		if err != nil {
			// Not hex, use as raw bytes
			csrfSecret = []byte(cfg.Auth.SessionSecret)
		}
	} else {
		secret, err := auth.GenerateSessionSecret()
		if err != nil {
			log.Fatalf("Failed to generate CSRF secret: %v", err)
		}
		csrfSecret, _ = hex.DecodeString(secret)
		log.Printf("Generated session secret (set AUTH_SESSION_SECRET to persist)")
	}

	routerCfg := http_controllers.RouterConfig{
		Stores:          stores,
		BookService:     bookService,
		ReviewService:   reviewService,
		WishlistService: wishlistService,
		AuthService:     authService,
		AuthConfig:      cfg.Auth,
		AuthMiddleware:  authMiddleware,
		SessionManager:  sessionManager,
		DemoMiddleware:  demoMiddleware,
		CSRFSecret:      csrfSecret,
		SecureCookies:   cfg.Auth.SecureCookies,
		TemplatesPath:   cfg.UI.TemplatesPath,
		StaticPath:      cfg.UI.StaticPath,
		Version:         version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
