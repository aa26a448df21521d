package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogImage records metadata for an uploaded image. The bytes themselves live
// in the blob store; this row only tracks where they ended up.
type BlogImage struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	FileName      string    `gorm:"size:255;not null" json:"file_name"`
	FileExtension string    `gorm:"size:16;not null" json:"file_extension"`
	Title         string    `gorm:"size:255" json:"title"`
	URL           string    `gorm:"size:1024;not null" json:"url"`
	DateCreated   time.Time `json:"date_created"`
}

func (i *BlogImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.DateCreated.IsZero() {
		i.DateCreated = time.Now()
	}
	return nil
}
