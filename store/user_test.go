package store_test

import (
	"errors"
	"testing"

	"github.com/blogts/blogapi/models"
	"github.com/blogts/blogapi/store"
)

func newSeededUserStore(t *testing.T) *store.UserStore {
	t.Helper()
	db := newTestDB(t)
	if err := store.SeedIdentity(db, "admin@blogts.com", "admin"); err != nil {
		t.Fatalf("SeedIdentity: %v", err)
	}
	return store.NewUserStore(db)
}

func TestUserStore_Register(t *testing.T) {
	users := newSeededUserStore(t)

	user, err := users.Register("reader@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated id")
	}

	names := store.RoleNames(user)
	if len(names) != 1 || names[0] != models.RoleReader {
		t.Fatalf("expected new accounts to hold only Reader, got %v", names)
	}
}

func TestUserStore_Register_DuplicateEmail(t *testing.T) {
	users := newSeededUserStore(t)

	if _, err := users.Register("dup@example.com", "password123"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := users.Register("dup@example.com", "different456")
	if !errors.Is(err, store.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserStore_VerifyCredentials(t *testing.T) {
	users := newSeededUserStore(t)

	admin, err := users.VerifyCredentials("admin@blogts.com", "admin")
	if err != nil {
		t.Fatalf("VerifyCredentials: %v", err)
	}
	names := store.RoleNames(admin)
	if len(names) != 2 {
		t.Fatalf("expected admin to carry both roles, got %v", names)
	}
}

func TestUserStore_VerifyCredentials_UniformFailure(t *testing.T) {
	users := newSeededUserStore(t)

	// Wrong password and unknown email must be indistinguishable.
	_, badPassword := users.VerifyCredentials("admin@blogts.com", "wrong")
	_, badEmail := users.VerifyCredentials("nobody@example.com", "admin")

	if !errors.Is(badPassword, store.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", badPassword)
	}
	if !errors.Is(badEmail, store.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", badEmail)
	}
}
