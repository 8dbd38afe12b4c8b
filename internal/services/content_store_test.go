package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dokser_echo/internal/models"
)

// newTestDB opens a migrated SQLite database in a per-test directory
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "content.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache, err := NewRedisCache("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func countDocs(t *testing.T, db *gorm.DB, href string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.DocPage{}).Where("href = ?", href).Count(&n).Error)
	return n
}

func TestSaveDocUpsertsByHref(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewContentService(db, nil)

	require.NoError(t, svc.SaveDoc(ctx, "/DSA/Llist", "<p>first</p>"))
	require.NoError(t, svc.SaveDoc(ctx, "/DSA/Llist", "<p>second</p>"))

	assert.Equal(t, int64(1), countDocs(t, db, "/DSA/Llist"))

	var page models.DocPage
	require.NoError(t, db.Where("href = ?", "/DSA/Llist").First(&page).Error)
	assert.Equal(t, "Linked-Lists", page.Title, "title comes from the route config")
	assert.Equal(t, "<p>second</p>", page.Body)

	body, err := svc.DocBody(ctx, "/DSA/Llist")
	require.NoError(t, err)
	assert.Equal(t, "<p>second</p>", body)
}

func TestDocBodyUsesCache(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cache, mr := newTestCache(t)
	svc := NewContentService(db, cache)
	key := "dokser:" + docCacheKey("/DSA/Arrays")

	require.NoError(t, svc.SaveDoc(ctx, "/DSA/Arrays", "<p>v1</p>"))
	assert.False(t, mr.Exists(key))

	body, err := svc.DocBody(ctx, "/DSA/Arrays")
	require.NoError(t, err)
	assert.Equal(t, "<p>v1</p>", body)
	assert.True(t, mr.Exists(key), "first read fills the cache")

	// Bypass the service so only the cache still holds v1
	require.NoError(t, db.Model(&models.DocPage{}).Where("href = ?", "/DSA/Arrays").Update("body", "<p>direct</p>").Error)
	body, err = svc.DocBody(ctx, "/DSA/Arrays")
	require.NoError(t, err)
	assert.Equal(t, "<p>v1</p>", body)

	require.NoError(t, svc.SaveDoc(ctx, "/DSA/Arrays", "<p>v2</p>"))
	assert.False(t, mr.Exists(key), "saving drops the cached body")

	body, err = svc.DocBody(ctx, "/DSA/Arrays")
	require.NoError(t, err)
	assert.Equal(t, "<p>v2</p>", body)
}

func TestDocBodyFallsBackToDatabase(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cache, mr := newTestCache(t)
	svc := NewContentService(db, cache)

	require.NoError(t, db.Create(&models.DocPage{Href: "/DSA/Trees", Title: "Trees", Body: "<p>from db</p>"}).Error)

	body, err := svc.DocBody(ctx, "/DSA/Trees")
	require.NoError(t, err)
	assert.Equal(t, "<p>from db</p>", body)

	_, err = svc.DocBody(ctx, "/DSA/Graphs")
	assert.ErrorIs(t, err, ErrContentNotFound)
	assert.False(t, mr.Exists("dokser:"+docCacheKey("/DSA/Graphs")), "misses are not cached")
}

func TestSaveDocWhenCacheIsDown(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cache, mr := newTestCache(t)
	svc := NewContentService(db, cache)

	mr.Close()

	assert.NoError(t, svc.SaveDoc(ctx, "/DSA/Stacks", "<p>stacks</p>"))
	assert.Equal(t, int64(1), countDocs(t, db, "/DSA/Stacks"))
}

func TestPublishedPosts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewContentService(db, nil)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	at := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}
	posts := []models.BlogPost{
		{Slug: "older", Title: "Older", PublishedAt: at(-9 * 24 * time.Hour)},
		{Slug: "draft", Title: "Draft"},
		{Slug: "newer", Title: "Newer", PublishedAt: at(-24 * time.Hour)},
		{Slug: "scheduled", Title: "Scheduled", PublishedAt: at(10 * 24 * time.Hour)},
	}
	require.NoError(t, db.Create(&posts).Error)

	listed, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	slugs := make([]string, 0, len(listed))
	for _, p := range listed {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"newer", "older"}, slugs)

	tests := []struct {
		slug  string
		found bool
	}{
		{slug: "newer", found: true},
		{slug: "older", found: true},
		{slug: "draft", found: false},
		{slug: "scheduled", found: false},
		{slug: "missing", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			post, err := svc.Post(ctx, tt.slug)
			if !tt.found {
				assert.ErrorIs(t, err, ErrContentNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.slug, post.Slug)
		})
	}
}
