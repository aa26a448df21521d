package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/blogts/blogapi/models"
	"github.com/blogts/blogapi/utils"
)

// UserStore holds user records, password hashes, and role memberships.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore backed by the given connection.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByEmail returns the user with role memberships populated, or
// ErrNotFound.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Roles").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

// VerifyCredentials checks the email/password pair and returns the matching
// user. Unknown email and wrong password both come back as
// ErrInvalidCredentials so the response leaks nothing about which half was
// wrong.
func (s *UserStore) VerifyCredentials(email, password string) (*models.User, error) {
	user, err := s.FindByEmail(email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Register creates a new account holding the Reader role. Returns
// ErrDuplicateEmail when the address is already taken. Uniqueness is
// enforced by the email index, not a pre-check, so two concurrent
// registrations cannot both slip through; the loser gets the same sentinel.
func (s *UserStore) Register(email, password string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var reader models.Role
	if err := s.db.Where("name = ?", models.RoleReader).First(&reader).Error; err != nil {
		return nil, mapNotFound(err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Roles:        []models.Role{reader},
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// isDuplicateKey recognizes a unique-constraint violation across the
// dialectors in use (translated error, MySQL, sqlite).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint")
}

// RoleNames flattens a user's role memberships into their names.
func RoleNames(user *models.User) []string {
	names := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		names = append(names, role.Name)
	}
	return names
}
