package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost is an entry on the /blog index
type BlogPost struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Slug        string     `gorm:"type:varchar(255);uniqueIndex" json:"slug"`
	Title       string     `gorm:"type:varchar(255)" json:"title"`
	Summary     string     `gorm:"type:text" json:"summary"`
	Body        string     `gorm:"type:text" json:"body"`
	PublishedAt *time.Time `gorm:"index" json:"published_at"` // nil means draft
}

// IsPublished reports whether the post is visible on the blog
func (p BlogPost) IsPublished(now time.Time) bool {
	return p.PublishedAt != nil && !p.PublishedAt.After(now)
}
