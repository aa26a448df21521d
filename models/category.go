package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a named tag referenced by zero or more posts.
type Category struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	URLHandle string `gorm:"size:255;not null;index" json:"url_handle"`
	Posts     []Post `gorm:"many2many:post_categories" json:"-"`
}

// BeforeCreate assigns a UUID key when the caller did not supply one.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
