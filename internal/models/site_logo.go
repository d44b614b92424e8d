package models

import "time"

// SiteLogo is a singleton document.
type SiteLogo struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	DocID string `gorm:"size:100;uniqueIndex;not null" json:"doc_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Image Image  `gorm:"embedded;embeddedPrefix:image_" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
