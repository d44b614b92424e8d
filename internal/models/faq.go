package models

import "time"

type Faq struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	DocID string `gorm:"size:100;uniqueIndex;not null" json:"doc_id"`

	Question string       `gorm:"size:300;not null" json:"question"`
	Answer   PortableText `gorm:"type:jsonb;not null" json:"answer"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
