package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"dokser_echo/internal/routes"
	"dokser_echo/web/templates/pages"
)

const (
	heroHeadline   = "K unal Singh's Atmosoft™"
	heroTagline    = "This feature-packed documentation Content, offers a sleek and responsive design, perfect for all your required documentation needs."
	heroHandle     = "@tmosoft"
	typingInterval = 100 * time.Millisecond
)

// HomeHandler serves the landing page
type HomeHandler struct {
	githubURL string
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(githubURL string) *HomeHandler {
	return &HomeHandler{githubURL: githubURL}
}

// Home renders the landing page
func (h *HomeHandler) Home(c echo.Context) error {
	props := pages.HomeProps{
		Title:          "Home",
		Headline:       heroHeadline,
		Tagline:        heroTagline,
		GitHubURL:      h.githubURL,
		GetStartedHref: routes.GetStartedHref(),
		BlogHref:       "/blog",
		Handle:         heroHandle,
		TypingInterval: typingInterval,
	}

	return pages.Home(props).Render(c.Request().Context(), c.Response())
}
