package models

import (
	"time"

	"gorm.io/gorm"
)

// DocPage stores the body of a documentation page, keyed by its route path
type DocPage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Href  string `gorm:"type:varchar(255);uniqueIndex" json:"href"` // absolute route path, e.g. "/DSA/Arrays"
	Title string `gorm:"type:varchar(255)" json:"title"`
	Body  string `gorm:"type:text" json:"body"` // HTML
}
