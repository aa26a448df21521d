package store

import (
	"gorm.io/gorm"

	"github.com/blogts/blogapi/models"
)

// ImageStore tracks metadata for uploaded images. The bytes live in the blob
// store; nothing here reads or writes them.
type ImageStore struct {
	db *gorm.DB
}

// NewImageStore creates an ImageStore backed by the given connection.
func NewImageStore(db *gorm.DB) *ImageStore {
	return &ImageStore{db: db}
}

// Create persists an image metadata record.
func (s *ImageStore) Create(image *models.BlogImage) (*models.BlogImage, error) {
	if err := s.db.Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

// GetAll returns every image record, newest first.
func (s *ImageStore) GetAll() ([]models.BlogImage, error) {
	var images []models.BlogImage
	if err := s.db.Order("date_created DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
