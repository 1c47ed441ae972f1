package books

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookclub/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_books_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Book{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Create(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	book := &entities.Book{Title: "Dune", Author: "Frank Herbert"}
	err := repo.Create(book)

	require.NoError(t, err)
	assert.NotZero(t, book.ID)
}

func TestRepository_Create_DuplicateTitleAuthor(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Create(&entities.Book{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)

	err = repo.Create(&entities.Book{Title: "Dune", Author: "Frank Herbert"})
	assert.ErrorIs(t, err, ErrDuplicateBook)

	// Exactly one row persisted
	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_Create_SameTitleDifferentAuthor(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Book{Title: "Collected Poems", Author: "W. B. Yeats"}))
	require.NoError(t, repo.Create(&entities.Book{Title: "Collected Poems", Author: "Sylvia Plath"}))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepository_GetByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := &entities.Book{Title: "Dune", Author: "Frank Herbert"}
	require.NoError(t, repo.Create(created))

	book, err := repo.GetByID(created.ID)

	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Frank Herbert", book.Author)
	assert.Zero(t, book.RatingAvg)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	book, err := repo.GetByID(999)

	require.NoError(t, err)
	assert.Nil(t, book)
}

func TestRepository_GetAll(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Book{Title: "Dune", Author: "Frank Herbert"}))
	require.NoError(t, repo.Create(&entities.Book{Title: "Hyperion", Author: "Dan Simmons"}))

	all, err := repo.GetAll()

	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Dune", all[0].Title)
	assert.Equal(t, "Hyperion", all[1].Title)
}

func TestRepository_RoundTrip(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := &entities.Book{Title: "Dune", Author: "Frank Herbert"}
	require.NoError(t, repo.Create(created))

	read, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, read)

	assert.Equal(t, *created, *read)
}
