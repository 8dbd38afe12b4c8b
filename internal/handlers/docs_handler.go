package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"dokser_echo/internal/routes"
	"dokser_echo/internal/services"
	"dokser_echo/web/templates/pages"
	"dokser_echo/web/templates/shared"
)

// DocsHandler serves documentation pages and the route API
type DocsHandler struct {
	content *services.ContentService
}

// NewDocsHandler creates a new DocsHandler
func NewDocsHandler(content *services.ContentService) *DocsHandler {
	return &DocsHandler{content: content}
}

// Index redirects to the first declared documentation page
func (h *DocsHandler) Index(c echo.Context) error {
	return c.Redirect(http.StatusTemporaryRedirect, routes.GetStartedHref())
}

// Show renders the documentation page at /docs/<route path>
func (h *DocsHandler) Show(c echo.Context) error {
	href := "/" + strings.TrimSuffix(c.Param("*"), "/")

	page, ok := routes.Lookup(href)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Documentation page not found")
	}

	body, err := h.content.DocBody(c.Request().Context(), page.Href)
	if err != nil && !errors.Is(err, services.ErrContentNotFound) {
		// Still render the page shell, with the placeholder body
		c.Logger().Errorf("failed to load content for %s: %v", page.Href, err)
	}

	prev, next := routes.PrevNext(page.Href)

	props := pages.DocPageProps{
		Title:       page.Title,
		ActiveNav:   "docs",
		Breadcrumbs: docBreadcrumbs(page.Href),
		UserEmail:   getStringFromContext(c, "userEmail"),
		Sections:    routes.DocSections,
		Page:        page,
		Body:        body,
		Prev:        prev,
		Next:        next,
	}

	return pages.DocPage(props).Render(c.Request().Context(), c.Response())
}

// ListRoutes returns the flattened page list as JSON
func (h *DocsHandler) ListRoutes(c echo.Context) error {
	return c.JSON(http.StatusOK, routes.PageRoutes)
}

// ListSections returns the sidebar sections as JSON
func (h *DocsHandler) ListSections(c echo.Context) error {
	return c.JSON(http.StatusOK, routes.DocSections)
}

// docBreadcrumbs builds Home > Docs > section > ... > page; the last step is unlinked
func docBreadcrumbs(href string) []shared.Breadcrumb {
	breadcrumbs := []shared.Breadcrumb{
		{Title: "Home", URL: "/"},
		{Title: "Docs", URL: routes.DocsPrefix},
	}

	trail := routes.Trail(routes.Routes, href)
	for i, crumb := range trail {
		url := ""
		if crumb.Link && i < len(trail)-1 {
			url = routes.DocsPrefix + crumb.Href
		}
		breadcrumbs = append(breadcrumbs, shared.Breadcrumb{Title: crumb.Title, URL: url})
	}
	return breadcrumbs
}
