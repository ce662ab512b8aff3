package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryImage is one entry in the events page image gallery.
// The gallery stores image URLs, not blobs.
type GalleryImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	URL       string    `gorm:"size:2048;not null" json:"url"`
	Caption   string    `gorm:"size:255" json:"caption"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
