package models

import "time"

// ShopLocation describes a physical shop. Contact fields are optional
// overrides; when empty, the SiteSettings defaults apply (resolved in the
// domain layer, never stored back).
type ShopLocation struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	DocID string `gorm:"size:100;uniqueIndex;not null" json:"doc_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Street string `gorm:"size:150;not null" json:"street"`
	City   string `gorm:"size:100;not null" json:"city"`
	Zip    string `gorm:"size:20" json:"zip"`

	Phone          string `gorm:"size:20" json:"phone,omitempty"`
	Email          string `gorm:"size:100" json:"email,omitempty"`
	AppointmentURL string `gorm:"size:500" json:"appointment_url,omitempty"`
	LocationURL    string `gorm:"size:500" json:"location_url,omitempty"`

	SocialLinks SocialLinks `gorm:"type:jsonb" json:"social_links,omitempty"`
	Timetable   Timetable   `gorm:"type:jsonb" json:"timetable,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
