package store

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors returned by the stores. Callers branch with errors.Is;
// absence is an ordinary return value, never a panic.
var (
	// ErrNotFound signals that the target of a lookup, update, or delete
	// does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnknownCategory is returned in strict mode when a post write
	// references a category id that does not exist.
	ErrUnknownCategory = errors.New("unknown category id")
	// ErrDuplicateEmail signals that a registration email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the caller cannot tell which half failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// mapNotFound converts gorm's record-not-found into the store sentinel and
// passes every other error through unchanged.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
