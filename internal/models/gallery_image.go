package models

import "time"

// GalleryImage entries are displayed newest-first.
type GalleryImage struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	DocID string `gorm:"size:100;uniqueIndex;not null" json:"doc_id"`

	Image Image `gorm:"embedded;embeddedPrefix:image_" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
