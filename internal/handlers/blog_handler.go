package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"dokser_echo/internal/services"
	"dokser_echo/web/templates/pages"
	"dokser_echo/web/templates/shared"
)

// BlogHandler serves the blog index and posts
type BlogHandler struct {
	content *services.ContentService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(content *services.ContentService) *BlogHandler {
	return &BlogHandler{content: content}
}

// Index renders published posts, newest first
func (h *BlogHandler) Index(c echo.Context) error {
	posts, err := h.content.ListPosts(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load blog posts")
	}

	props := pages.BlogIndexProps{
		Title: "Blog",
		Breadcrumbs: []shared.Breadcrumb{
			{Title: "Home", URL: "/"},
			{Title: "Blog", URL: ""},
		},
		UserEmail: getStringFromContext(c, "userEmail"),
		Posts:     posts,
	}

	return pages.BlogIndex(props).Render(c.Request().Context(), c.Response())
}

// Show renders a single post
func (h *BlogHandler) Show(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post")
	}

	post, err := h.content.Post(c.Request().Context(), slug)
	if errors.Is(err, services.ErrContentNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load post")
	}

	props := pages.BlogPostProps{
		Title: post.Title,
		Breadcrumbs: []shared.Breadcrumb{
			{Title: "Home", URL: "/"},
			{Title: "Blog", URL: "/blog"},
			{Title: post.Title, URL: ""},
		},
		UserEmail: getStringFromContext(c, "userEmail"),
		Post:      *post,
	}

	return pages.BlogPost(props).Render(c.Request().Context(), c.Response())
}
