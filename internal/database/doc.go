// Package database provides the data access layer for the application.
//
// # Architecture
//
// The application persists to two independent SQLite stores: the catalog
// store (books and reviews) and the account store (users, wishlist entries
// and session data). There are no cross-store transactions and no foreign
// keys between the stores; references between them are plain integer IDs.
//
// The layer is organized into per-entity sub-packages:
//
//	database/
//	├── database.go      # Store setup and migrations
//	├── books/           # Book lookups and creation (catalog store)
//	├── reviews/         # Review lookups and creation (catalog store)
//	├── users/           # User lookups and creation (account store)
//	└── wishlist/        # Wishlist entries (account store)
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type scoped to its owning store:
//
//	stores, err := database.NewStores(cfg.Database)
//
//	booksRepo := books.NewRepository(stores.Catalog.DB)
//	usersRepo := users.NewRepository(stores.Accounts.DB)
//
//	book, err := booksRepo.GetByID(123)
//
// Repositories own all query construction and error translation for their
// table. Storage-level duplicate conflicts surface as per-package sentinel
// errors (for example books.ErrDuplicateBook) so callers never parse
// driver error strings.
package database
