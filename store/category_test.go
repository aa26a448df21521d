package store_test

import (
	"errors"
	"testing"

	"github.com/blogts/blogapi/models"
	"github.com/blogts/blogapi/store"
)

func TestCategoryStore_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	categories := store.NewCategoryStore(db)

	created, err := categories.Create(&models.Category{Name: "Tech", URLHandle: "tech"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := categories.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Tech" || got.URLHandle != "tech" {
		t.Fatalf("unexpected category: %+v", got)
	}
}

func TestCategoryStore_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	categories := store.NewCategoryStore(db)

	_, err := categories.GetByID("bogus-id")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryStore_GetAll(t *testing.T) {
	db := newTestDB(t)
	categories := store.NewCategoryStore(db)

	for _, name := range []string{"Go", "Cloud", "Databases"} {
		if _, err := categories.Create(&models.Category{Name: name, URLHandle: name}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	all, err := categories.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(all))
	}
}

func TestCategoryStore_Update_FullReplace(t *testing.T) {
	db := newTestDB(t)
	categories := store.NewCategoryStore(db)

	created, err := categories.Create(&models.Category{Name: "Tech", URLHandle: "tech"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := categories.Update(created.ID, models.Category{Name: "Technology", URLHandle: "technology"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Technology" || updated.URLHandle != "technology" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	got, err := categories.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if got.Name != "Technology" || got.URLHandle != "technology" {
		t.Fatalf("update did not persist: %+v", got)
	}
}

func TestCategoryStore_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	categories := store.NewCategoryStore(db)

	_, err := categories.Update("missing", models.Category{Name: "X", URLHandle: "x"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryStore_Delete(t *testing.T) {
	db := newTestDB(t)
	categories := store.NewCategoryStore(db)

	created, err := categories.Create(&models.Category{Name: "Tech", URLHandle: "tech"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := categories.Delete(created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != created.ID || deleted.Name != "Tech" {
		t.Fatalf("expected removed snapshot, got %+v", deleted)
	}

	if _, err := categories.GetByID(created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCategoryStore_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	categories := store.NewCategoryStore(db)

	_, err := categories.Delete("missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
