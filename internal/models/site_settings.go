package models

import (
	"database/sql/driver"
	"time"
)

// SiteSettings is a singleton document holding the site-wide defaults.
// ShopLocation documents may override the contact fields per location.
type SiteSettings struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	DocID string `gorm:"size:100;uniqueIndex;not null" json:"doc_id"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:300" json:"description"`

	Phone          string `gorm:"size:20" json:"phone,omitempty"`
	Email          string `gorm:"size:100" json:"email,omitempty"`
	AppointmentURL string `gorm:"size:500" json:"appointment_url,omitempty"`
	LocationURL    string `gorm:"size:500" json:"location_url,omitempty"`

	SocialLinks SocialLinks `gorm:"type:jsonb" json:"social_links,omitempty"`
	Timetable   Timetable   `gorm:"type:jsonb" json:"timetable,omitempty"`

	FooterTitle string       `gorm:"size:150" json:"footer_title,omitempty"`
	FooterBody  PortableText `gorm:"type:jsonb" json:"footer_body,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type SocialLinks []SocialLink

func (s SocialLinks) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return valueJSON(s)
}

func (s *SocialLinks) Scan(value any) error {
	return scanJSON(value, s)
}

func (SocialLinks) GormDataType() string {
	return "jsonb"
}

// TimetableEntry is one authored opening-hours row, e.g.
// {Days: "Luni - Vineri", Hours: "09:00 - 19:00"}.
type TimetableEntry struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

type Timetable []TimetableEntry

func (t Timetable) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return valueJSON(t)
}

func (t *Timetable) Scan(value any) error {
	return scanJSON(value, t)
}

func (Timetable) GormDataType() string {
	return "jsonb"
}
