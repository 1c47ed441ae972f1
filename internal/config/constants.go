package config

// Default paths for the two application stores
const (
	// DefaultCatalogDatabasePath is the default path for the catalog store
	// (books and reviews)
	DefaultCatalogDatabasePath = "./data/catalog.db"

	// DefaultAccountsDatabasePath is the default path for the account store
	// (users, wishlists and sessions)
	DefaultAccountsDatabasePath = "./data/accounts.db"
)
