package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlogPostIsPublished(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		at       *time.Time
		expected bool
	}{
		{name: "draft", at: nil, expected: false},
		{name: "published earlier", at: &past, expected: true},
		{name: "published exactly now", at: &now, expected: true},
		{name: "scheduled", at: &future, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BlogPost{PublishedAt: tt.at}.IsPublished(now))
		})
	}
}
