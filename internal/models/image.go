package models

import "database/sql/driver"

// Image references an uploaded asset by its object key. The public URL is
// resolved at read time by the content client and never stored.
type Image struct {
	Key    string `gorm:"size:255" json:"key"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `gorm:"size:255" json:"alt"`

	// Hotspot is the authored focal point, normalized to [0,1]. Optional.
	Hotspot *Hotspot `gorm:"type:jsonb" json:"hotspot,omitempty"`

	URL string `gorm:"-" json:"url,omitempty"`
}

func (i Image) IsZero() bool {
	return i.Key == ""
}

type Hotspot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (h Hotspot) Value() (driver.Value, error) {
	return valueJSON(h)
}

func (h *Hotspot) Scan(value any) error {
	return scanJSON(value, h)
}

func (Hotspot) GormDataType() string {
	return "jsonb"
}
