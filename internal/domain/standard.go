package domain

import "time"

// Standard is a published formatting or review guideline document.
type Standard struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	DocumentPath string    `json:"document_path,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
