// Package users provides account-store database operations for users.
//
// # Usage
//
//	repo := users.NewRepository(stores.Accounts.DB)
//	user, err := repo.GetByUsername(name)
package users

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookclub/internal/entities"
)

// ErrUserExists is returned by Create when the username or email is
// already taken.
var ErrUserExists = errors.New("user already exists")

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByUsername retrieves a user by exact username match.
// Returns (nil, nil) when no such user exists.
func (r *Repository) GetByUsername(username string) (*entities.User, error) {
	return r.getBy("user_name = ?", username)
}

// GetByEmail retrieves a user by exact email match.
// Returns (nil, nil) when no such user exists.
func (r *Repository) GetByEmail(email string) (*entities.User, error) {
	return r.getBy("email = ?", email)
}

// GetByID retrieves a user by primary key.
// Returns (nil, nil) when no such user exists.
func (r *Repository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) getBy(query string, arg string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where(query, arg).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a user. It does not pre-check duplicates itself;
// callers are expected to call UserExists first. The unique indexes on
// user_name and email still catch the race between two concurrent
// registrations, surfacing as ErrUserExists for the loser.
func (r *Repository) Create(user *entities.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// UserExists reports whether any user matches the username OR the email.
// Used as a pre-insert guard so registration failures are detected before
// relying on the unique-constraint path.
func (r *Repository) UserExists(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.User{}).
		Where("user_name = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}
	return count > 0, nil
}
