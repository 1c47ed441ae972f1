package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookclub/internal/entities"
)

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	return Config{
		CatalogPath:  filepath.Join(dir, "catalog.db"),
		AccountsPath: filepath.Join(dir, "accounts.db"),
	}
}

func TestNewStores(t *testing.T) {
	cfg := testConfig(t)

	stores, err := NewStores(cfg)
	require.NoError(t, err)
	defer stores.Close()

	assert.FileExists(t, cfg.CatalogPath)
	assert.FileExists(t, cfg.AccountsPath)
}

func TestNewStores_CreatesMissingDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		CatalogPath:  filepath.Join(dir, "nested", "data", "catalog.db"),
		AccountsPath: filepath.Join(dir, "nested", "data", "accounts.db"),
	}

	stores, err := NewStores(cfg)
	require.NoError(t, err)
	defer stores.Close()

	assert.FileExists(t, cfg.CatalogPath)
}

func TestNewStores_Idempotent(t *testing.T) {
	cfg := testConfig(t)

	stores, err := NewStores(cfg)
	require.NoError(t, err)

	book := &entities.Book{Title: "Dune", Author: "Frank Herbert"}
	require.NoError(t, stores.Catalog.DB.Create(book).Error)
	require.NoError(t, stores.Close())

	// Re-opening over the same files keeps existing rows intact.
	stores, err = NewStores(cfg)
	require.NoError(t, err)
	defer stores.Close()

	var count int64
	require.NoError(t, stores.Catalog.DB.Model(&entities.Book{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNewStores_StoresAreIndependent(t *testing.T) {
	cfg := testConfig(t)

	stores, err := NewStores(cfg)
	require.NoError(t, err)
	defer stores.Close()

	// Catalog tables exist only in the catalog store.
	assert.True(t, stores.Catalog.DB.Migrator().HasTable(&entities.Book{}))
	assert.True(t, stores.Catalog.DB.Migrator().HasTable(&entities.Review{}))
	assert.False(t, stores.Catalog.DB.Migrator().HasTable(&entities.User{}))

	// Account tables exist only in the account store.
	assert.True(t, stores.Accounts.DB.Migrator().HasTable(&entities.User{}))
	assert.True(t, stores.Accounts.DB.Migrator().HasTable(&entities.WishlistEntry{}))
	assert.False(t, stores.Accounts.DB.Migrator().HasTable(&entities.Book{}))
}

func TestStore_SQLDB(t *testing.T) {
	cfg := testConfig(t)

	stores, err := NewStores(cfg)
	require.NoError(t, err)
	defer stores.Close()

	sqlDB, err := stores.Catalog.SQLDB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}
