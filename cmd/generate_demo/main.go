// Command generate_demo creates demo stores with a sample catalogue and
// a demo account.
// Usage: go run cmd/generate_demo/main.go [-catalog path] [-accounts path]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mrlokans/bookclub/internal/auth"
	"github.com/mrlokans/bookclub/internal/config"
	"github.com/mrlokans/bookclub/internal/database"
	"github.com/mrlokans/bookclub/internal/database/books"
	"github.com/mrlokans/bookclub/internal/database/reviews"
	"github.com/mrlokans/bookclub/internal/database/users"
	"github.com/mrlokans/bookclub/internal/entities"
	"github.com/mrlokans/bookclub/internal/services"
)

const (
	defaultCatalogPath  = "./demo/catalog.db"
	defaultAccountsPath = "./demo/accounts.db"

	demoUsername = "demo"
	demoEmail    = "demo@example.com"
	demoPassword = "demo-password"
)

func main() {
	catalogPath := flag.String("catalog", defaultCatalogPath, "path to the demo catalog store")
	accountsPath := flag.String("accounts", defaultAccountsPath, "path to the demo account store")
	flag.Parse()

	log.Printf("Generating demo stores at %s and %s...", *catalogPath, *accountsPath)

	// Start fresh
	for _, path := range []string{*catalogPath, *accountsPath} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to remove existing demo store %s: %v", path, err)
		}
	}

	stores, err := database.NewStores(database.Config{
		CatalogPath:  *catalogPath,
		AccountsPath: *accountsPath,
	})
	if err != nil {
		log.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	booksRepo := books.NewRepository(stores.Catalog.DB)
	reviewsRepo := reviews.NewRepository(stores.Catalog.DB)
	usersRepo := users.NewRepository(stores.Accounts.DB)

	bookService := services.NewBookService(booksRepo)
	reviewService := services.NewReviewService(reviewsRepo)
	authService := auth.NewService(usersRepo, config.Auth{BcryptCost: 10})

	user, err := authService.Register(demoUsername, demoEmail, demoPassword)
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %q (sign in with %s / %s)", user.Username, demoEmail, demoPassword)

	for _, b := range demoBooks() {
		if err := bookService.AddBook(b.Title, b.Author); err != nil {
			log.Printf("Failed to add book %s: %v", b.Title, err)
			continue
		}
		log.Printf("Added: %s by %s", b.Title, b.Author)
	}

	seedReviews(bookService, reviewService, user.ID)

	log.Printf("Demo stores generated")
}

func demoBooks() []entities.Book {
	return []entities.Book{
		{Title: "Pride and Prejudice", Author: "Jane Austen"},
		{Title: "Moby-Dick", Author: "Herman Melville"},
		{Title: "Frankenstein", Author: "Mary Shelley"},
		{Title: "The Picture of Dorian Gray", Author: "Oscar Wilde"},
		{Title: "Crime and Punishment", Author: "Fyodor Dostoevsky"},
		{Title: "Middlemarch", Author: "George Eliot"},
	}
}

func seedReviews(bookService *services.BookService, reviewService *services.ReviewService, accountID uint) {
	all, err := bookService.GetAllBooks()
	if err != nil || len(all) == 0 {
		log.Printf("No books to review: %v", err)
		return
	}

	samples := []struct {
		rating float64
		title  string
		text   string
	}{
		{5, "A classic for a reason", "Re-read it every few years and it still holds up."},
		{4, "Slow start, great finish", "The first hundred pages ask for patience."},
		{3.5, "Mixed feelings", "Brilliant in places, baggy in others."},
	}

	for i, s := range samples {
		if i >= len(all) {
			break
		}
		if err := reviewService.AddReview(accountID, all[i].ID, s.rating, s.title, s.text); err != nil {
			log.Printf("Failed to add review for %s: %v", all[i].Title, err)
		}
	}
}
