package store

import (
	"gorm.io/gorm"

	"github.com/blogts/blogapi/models"
)

// CategoryStore provides CRUD over category records. It owns no cross-entity
// behavior beyond clearing its own join rows on delete.
type CategoryStore struct {
	db *gorm.DB
}

// NewCategoryStore creates a CategoryStore backed by the given connection.
func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// Create persists a new category and returns it with its generated id.
func (s *CategoryStore) Create(category *models.Category) (*models.Category, error) {
	if err := s.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// GetAll returns every category.
func (s *CategoryStore) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns the category with the given id, or ErrNotFound.
func (s *CategoryStore) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &category, nil
}

// Update overwrites the category's name and URL handle with the supplied
// values and returns the updated record, or ErrNotFound.
func (s *CategoryStore) Update(id string, fields models.Category) (*models.Category, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = fields.Name
	existing.URLHandle = fields.URLHandle
	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the category and its post-category join rows, returning the
// removed snapshot or ErrNotFound. Posts that referenced the category are
// never touched; they simply lose the reference.
func (s *CategoryStore) Delete(id string) (*models.Category, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(existing).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}
