package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a blog article with its set of category references.
// The category set lives in the post_categories join table and is replaced
// wholesale on update, never merged.
type Post struct {
	ID               string     `gorm:"primaryKey;size:36" json:"id"`
	Author           string     `gorm:"size:255;not null" json:"author"`
	Title            string     `gorm:"size:255;not null" json:"title"`
	Content          string     `gorm:"type:text;not null" json:"content"`
	ShortDescription string     `gorm:"size:1024" json:"short_description"`
	FeaturedImageURL string     `gorm:"size:1024" json:"featured_image_url"`
	URLHandle        string     `gorm:"size:255;not null;index" json:"url_handle"`
	PublishedDate    time.Time  `json:"published_date"`
	IsVisible        bool       `gorm:"default:true" json:"is_visible"`
	Categories       []Category `gorm:"many2many:post_categories" json:"categories"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// BeforeCreate assigns a UUID key when the caller did not supply one.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
