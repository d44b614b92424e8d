package models

import "time"

// Page is a site page assembled from an ordered list of sections.
// SortOrder is unique across pages (enforced at authoring time) and
// drives the navigation order.
type Page struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	DocID string `gorm:"size:100;uniqueIndex;not null" json:"doc_id"`

	Title     string `gorm:"size:100;not null" json:"title"`
	Path      string `gorm:"size:100;not null" json:"path"`
	SortOrder int    `gorm:"not null" json:"order"`
	IsIndex   bool   `gorm:"default:false" json:"is_index"`
	Published bool   `gorm:"default:true" json:"published"`

	Sections []Section `gorm:"constraint:OnDelete:CASCADE;" json:"sections"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Section is one typed content block of a page. The type tag selects
// which region of the page renders it.
type Section struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PageID uint `gorm:"index;not null" json:"page_id"`

	Type      string `gorm:"size:20;not null" json:"type"`
	SortOrder int    `gorm:"not null" json:"order"`

	Title    string       `gorm:"size:150" json:"title,omitempty"`
	Subtitle string       `gorm:"size:300" json:"subtitle,omitempty"`
	Body     PortableText `gorm:"type:jsonb" json:"body,omitempty"`
	Image    Image        `gorm:"embedded;embeddedPrefix:image_" json:"image,omitempty"`

	ButtonLabel string `gorm:"size:50" json:"button_label,omitempty"`
	ButtonHref  string `gorm:"size:500" json:"button_href,omitempty"`

	Marquee string `gorm:"size:300" json:"marquee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
