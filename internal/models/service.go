package models

import (
	"database/sql/driver"
	"time"
)

// Service is an offered treatment (haircut, beard trim, ...).
type Service struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	DocID string `gorm:"size:100;uniqueIndex;not null" json:"doc_id"`

	Name        string       `gorm:"size:100;not null" json:"name"`
	Price       float64      `gorm:"not null" json:"price"`
	Image       Image        `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	Description PortableText `gorm:"type:jsonb" json:"description,omitempty"`
	Details     StringList   `gorm:"type:jsonb" json:"details,omitempty"`
	DurationMin int          `json:"duration_min"`
	SortOrder   *int         `json:"order,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return valueJSON(s)
}

func (s *StringList) Scan(value any) error {
	return scanJSON(value, s)
}

func (StringList) GormDataType() string {
	return "jsonb"
}
