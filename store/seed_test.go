package store_test

import (
	"testing"

	"github.com/blogts/blogapi/models"
	"github.com/blogts/blogapi/store"
	"github.com/blogts/blogapi/utils"
)

func TestSeedIdentity(t *testing.T) {
	db := newTestDB(t)

	if err := store.SeedIdentity(db, "admin@blogts.com", "admin"); err != nil {
		t.Fatalf("SeedIdentity: %v", err)
	}

	var roles []models.Role
	if err := db.Find(&roles).Error; err != nil {
		t.Fatalf("load roles: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}
	byName := map[string]string{}
	for _, r := range roles {
		byName[r.Name] = r.ID
	}
	if byName[models.RoleReader] != store.ReaderRoleID {
		t.Fatalf("Reader role keyed %s, want %s", byName[models.RoleReader], store.ReaderRoleID)
	}
	if byName[models.RoleWriter] != store.WriterRoleID {
		t.Fatalf("Writer role keyed %s, want %s", byName[models.RoleWriter], store.WriterRoleID)
	}

	users := store.NewUserStore(db)
	admin, err := users.FindByEmail("admin@blogts.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if admin.ID != store.AdminUserID {
		t.Fatalf("admin keyed %s, want %s", admin.ID, store.AdminUserID)
	}
	if len(admin.Roles) != 2 {
		t.Fatalf("expected admin in both roles, got %+v", admin.Roles)
	}
	if !utils.CheckPassword(admin.PasswordHash, "admin") {
		t.Fatal("admin password hash does not verify")
	}
}

func TestSeedIdentity_Idempotent(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 2; i++ {
		if err := store.SeedIdentity(db, "admin@blogts.com", "admin"); err != nil {
			t.Fatalf("SeedIdentity run %d: %v", i+1, err)
		}

		var roleCount, userCount, membershipCount int64
		if err := db.Model(&models.Role{}).Count(&roleCount).Error; err != nil {
			t.Fatalf("count roles: %v", err)
		}
		if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
			t.Fatalf("count users: %v", err)
		}
		if err := db.Table("users_roles").Count(&membershipCount).Error; err != nil {
			t.Fatalf("count memberships: %v", err)
		}

		if roleCount != 2 || userCount != 1 || membershipCount != 2 {
			t.Fatalf("run %d: roles=%d users=%d memberships=%d, want 2/1/2",
				i+1, roleCount, userCount, membershipCount)
		}
	}
}

func TestSeedIdentity_DoesNotRewriteAdminPassword(t *testing.T) {
	db := newTestDB(t)

	if err := store.SeedIdentity(db, "admin@blogts.com", "first"); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	// A changed configured password must not rewrite the existing account.
	if err := store.SeedIdentity(db, "admin@blogts.com", "second"); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	users := store.NewUserStore(db)
	admin, err := users.FindByEmail("admin@blogts.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if !utils.CheckPassword(admin.PasswordHash, "first") {
		t.Fatal("original password no longer verifies")
	}
}
