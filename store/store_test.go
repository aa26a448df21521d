package store_test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/blogts/blogapi/config"
	"github.com/blogts/blogapi/models"
)

// newTestDB opens a throwaway sqlite database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := config.OpenDatabase(sqlite.Open(dbPath), "silent",
		&models.User{}, &models.Role{},
		&models.Category{}, &models.Post{}, &models.BlogImage{},
	)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return db
}
