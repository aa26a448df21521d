package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role names form a fixed enumerated set; new roles are not created at
// runtime.
const (
	RoleReader = "Reader"
	RoleWriter = "Writer"
)

// User represents an account in the identity domain. Passwords are stored as
// bcrypt hashes only.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Roles        []Role    `gorm:"many2many:users_roles" json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role is one of the fixed named roles granted to users.
type Role struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:64;not null;uniqueIndex" json:"name"`
	Users []User `gorm:"many2many:users_roles" json:"-"`
}

// BeforeCreate assigns a UUID key when the caller did not supply one. Seeded
// records come in with their fixed ids already set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
