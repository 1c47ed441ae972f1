package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookclub/internal/entities"
)

// Store wraps a single SQLite database handle.
type Store struct {
	DB *gorm.DB
}

// Stores holds the two application databases. The catalog store owns
// books and reviews, the account store owns users and wishlist entries.
// They are opened and migrated independently.
type Stores struct {
	Catalog  *Store
	Accounts *Store
}

// Config carries the on-disk paths for both stores.
type Config struct {
	CatalogPath  string
	AccountsPath string
}

// NewStores opens both stores, creating files, directories and tables as
// needed. Initialization is idempotent: existing schemas are left alone,
// so it is safe to call on every startup.
func NewStores(cfg Config) (*Stores, error) {
	catalog, err := openStore(cfg.CatalogPath, &entities.Book{}, &entities.Review{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog store: %w", err)
	}

	accounts, err := openStore(cfg.AccountsPath, &entities.User{}, &entities.WishlistEntry{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize account store: %w", err)
	}

	log.Printf("Stores initialized (catalog: %s, accounts: %s)", cfg.CatalogPath, cfg.AccountsPath)

	return &Stores{Catalog: catalog, Accounts: accounts}, nil
}

func openStore(path string, models ...any) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Map unique-constraint violations to gorm.ErrDuplicatedKey so
		// repositories can translate them without inspecting driver errors.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}

	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database %s: %w", path, err)
	}

	return &Store{DB: db}, nil
}

// SQLDB returns the underlying *sql.DB, used for pings and the session store.
func (s *Store) SQLDB() (*sql.DB, error) {
	return s.DB.DB()
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Close closes both stores, returning the first error encountered.
func (s *Stores) Close() error {
	catErr := s.Catalog.Close()
	if accErr := s.Accounts.Close(); accErr != nil {
		return accErr
	}
	return catErr
}
