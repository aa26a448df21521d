package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/blogts/blogapi/models"
	"github.com/blogts/blogapi/utils"
)

// Fixed identifiers for the seeded records. Constant keys are what make
// re-seeding idempotent: a second run finds the rows instead of inventing
// duplicates under fresh ids.
const (
	ReaderRoleID = "4f1619d7-e0dd-4292-90d0-1e10a048599c"
	WriterRoleID = "7bd33c7e-f8e8-48cf-94c7-9372fdc4ed2d"
	AdminUserID  = "8e4d163e-575c-48f0-b5ec-956d1ed1b71b"
)

// SeedIdentity ensures the fixed role set and the privileged account exist
// exactly once. It runs synchronously at boot, before the server listens;
// any error here must abort startup.
func SeedIdentity(db *gorm.DB, adminEmail, adminPassword string) error {
	roles := []models.Role{
		{ID: ReaderRoleID, Name: models.RoleReader},
		{ID: WriterRoleID, Name: models.RoleWriter},
	}
	for i := range roles {
		if err := db.Where("id = ?", roles[i].ID).FirstOrCreate(&roles[i]).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", roles[i].Name, err)
		}
	}

	var admin models.User
	err := db.Where("id = ?", AdminUserID).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := utils.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		admin = models.User{
			ID:           AdminUserID,
			Email:        adminEmail,
			PasswordHash: hash,
			Roles:        roles,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("seed admin account: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("look up admin account: %w", err)
	}

	// Account already exists; repair memberships in case an earlier seed
	// stopped between user and role rows.
	if err := db.Model(&admin).Association("Roles").Replace(roles); err != nil {
		return fmt.Errorf("seed admin roles: %w", err)
	}
	return nil
}
