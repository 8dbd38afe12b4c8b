package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"dokser_echo/internal/routes"
	"dokser_echo/internal/services"
	"dokser_echo/web/templates/pages"
	"dokser_echo/web/templates/shared"
)

// AdminHandler serves the documentation content editor
type AdminHandler struct {
	content *services.ContentService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(content *services.ContentService) *AdminHandler {
	return &AdminHandler{content: content}
}

// ListDocs renders every declared page with an edit link
func (h *AdminHandler) ListDocs(c echo.Context) error {
	props := pages.AdminDocsProps{
		Title: "Edit documentation",
		Breadcrumbs: []shared.Breadcrumb{
			{Title: "Home", URL: "/"},
			{Title: "Admin", URL: ""},
		},
		UserEmail:      getStringFromContext(c, "userEmail"),
		Sections:       routes.DocSections,
		StorageEnabled: h.content.Enabled(),
	}

	return pages.AdminDocs(props).Render(c.Request().Context(), c.Response())
}

// EditDocPage renders the editor for ?href=<route path>
func (h *AdminHandler) EditDocPage(c echo.Context) error {
	page, ok := routes.Lookup(c.QueryParam("href"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Documentation page not found")
	}

	body, err := h.content.DocBody(c.Request().Context(), page.Href)
	if err != nil && !errors.Is(err, services.ErrContentNotFound) {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load page content")
	}

	props := h.formProps(c, page, body)
	props.Saved = c.QueryParam("saved") == "1"
	return pages.AdminDocForm(props).Render(c.Request().Context(), c.Response())
}

// UpdateDoc saves the submitted body and redirects back to the editor
func (h *AdminHandler) UpdateDoc(c echo.Context) error {
	href := c.FormValue("href")
	body := c.FormValue("body")

	err := h.content.SaveDoc(c.Request().Context(), href, body)
	switch {
	case errors.Is(err, services.ErrUnknownRoute):
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown documentation page")
	case errors.Is(err, services.ErrStorageDisabled):
		page, _ := routes.Lookup(href)
		props := h.formProps(c, page, body)
		props.Error = "Content storage is not configured."
		c.Response().Status = http.StatusServiceUnavailable
		return pages.AdminDocForm(props).Render(c.Request().Context(), c.Response())
	case err != nil:
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save page")
	}

	return c.Redirect(http.StatusSeeOther, "/admin/docs/edit?saved=1&href="+url.QueryEscape(href))
}

func (h *AdminHandler) formProps(c echo.Context, page routes.Page, body string) pages.AdminDocFormProps {
	return pages.AdminDocFormProps{
		Title: "Edit " + page.Title,
		Breadcrumbs: []shared.Breadcrumb{
			{Title: "Home", URL: "/"},
			{Title: "Admin", URL: "/admin/docs"},
			{Title: page.Title, URL: ""},
		},
		UserEmail:      getStringFromContext(c, "userEmail"),
		Page:           page,
		Body:           body,
		StorageEnabled: h.content.Enabled(),
	}
}
