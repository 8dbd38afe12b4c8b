package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dokser_echo/internal/models"
	"dokser_echo/internal/routes"
)

// ErrContentNotFound is returned when nothing is stored for a page or post
var ErrContentNotFound = errors.New("content not found")

// ErrUnknownRoute is returned when saving content for a path missing from the route config
var ErrUnknownRoute = errors.New("href is not a declared documentation page")

// ErrStorageDisabled is returned by writes when no database is configured
var ErrStorageDisabled = errors.New("content storage is not configured")

const contentCacheTTL = 10 * time.Minute

// ContentService reads and writes page bodies and blog posts.
// Both db and cache are optional.
type ContentService struct {
	db    *gorm.DB
	cache *RedisCache
	now   func() time.Time
}

func NewContentService(db *gorm.DB, cache *RedisCache) *ContentService {
	return &ContentService{db: db, cache: cache, now: time.Now}
}

// Enabled reports whether content can be stored
func (s *ContentService) Enabled() bool {
	return s.db != nil
}

func docCacheKey(href string) string {
	return "doc:" + href
}

// DocBody returns the stored HTML body for a documentation page
func (s *ContentService) DocBody(ctx context.Context, href string) (string, error) {
	if s.db == nil {
		return "", ErrContentNotFound
	}

	return GetOrSet(s.cache, ctx, docCacheKey(href), contentCacheTTL, func() (string, error) {
		var page models.DocPage
		err := s.db.WithContext(ctx).Where("href = ?", href).First(&page).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrContentNotFound
		}
		if err != nil {
			return "", fmt.Errorf("failed to fetch doc page %s: %w", href, err)
		}
		return page.Body, nil
	})
}

// SaveDoc upserts the body of a declared documentation page and drops its cache entry
func (s *ContentService) SaveDoc(ctx context.Context, href, body string) error {
	page, ok := routes.Lookup(href)
	if !ok {
		return ErrUnknownRoute
	}
	if s.db == nil {
		return ErrStorageDisabled
	}

	doc := models.DocPage{Href: page.Href, Title: page.Title, Body: body}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "href"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "body", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to save doc page %s: %w", href, err)
	}

	// The row is committed; a stale entry expires with contentCacheTTL
	if err := s.cache.Delete(ctx, docCacheKey(href)); err != nil {
		log.Printf("Warning: failed to invalidate cache for %s: %v", href, err)
	}
	return nil
}

// ListPosts returns published blog posts, newest first
func (s *ContentService) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	if s.db == nil {
		return []models.BlogPost{}, nil
	}

	var posts []models.BlogPost
	err := s.db.WithContext(ctx).
		Where("published_at IS NOT NULL AND published_at <= ?", s.now()).
		Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// Post returns a single published blog post by slug
func (s *ContentService) Post(ctx context.Context, slug string) (*models.BlogPost, error) {
	if s.db == nil {
		return nil, ErrContentNotFound
	}

	var post models.BlogPost
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blog post %s: %w", slug, err)
	}
	if !post.IsPublished(s.now()) {
		return nil, ErrContentNotFound
	}
	return &post, nil
}
