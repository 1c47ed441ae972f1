package auth

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookclub/internal/config"
	"github.com/mrlokans/bookclub/internal/database/users"
	"github.com/mrlokans/bookclub/internal/entities"
)

func setupService(t *testing.T) (*Service, func()) {
	dbPath := "./test_auth_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))

	svc := NewService(users.NewRepository(db), config.Auth{BcryptCost: bcrypt.MinCost})

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return svc, cleanup
}

func TestService_Register(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	user, err := svc.Register("alice", "alice@example.com", "correct-horse")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "correct-horse", user.HashedPassword)
}

func TestService_Register_Validation(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"empty username", "", "a@example.com", "correct-horse", ErrUsernameRequired},
		{"empty email", "alice", "", "correct-horse", ErrEmailRequired},
		{"empty password", "alice", "a@example.com", "", ErrPasswordRequired},
		{"username too short", "ab", "a@example.com", "correct-horse", ErrUsernameInvalid},
		{"username bad chars", "alice smith", "a@example.com", "correct-horse", ErrUsernameInvalid},
		{"malformed email", "alice", "not-an-email", "correct-horse", ErrEmailInvalid},
		{"password too short", "alice", "a@example.com", "short", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Register("alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Register("alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = svc.Register("bob", "alice@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestService_Authenticate_ByUsername(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	registered, err := svc.Register("alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)

	user, err := svc.Authenticate("alice", "correct-horse")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, registered.ID, user.ID)
}

func TestService_Authenticate_ByEmail(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Register("alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)

	user, err := svc.Authenticate("alice@example.com", "correct-horse")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Register("alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = svc.Authenticate("alice", "wrong-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Authenticate_UnknownUser(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	_, err := svc.Authenticate("nobody", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_GetUserByID(t *testing.T) {
	svc, cleanup := setupService(t)
	defer cleanup()

	registered, err := svc.Register("alice", "alice@example.com", "correct-horse")
	require.NoError(t, err)

	user, err := svc.GetUserByID(registered.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	missing, err := svc.GetUserByID(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
