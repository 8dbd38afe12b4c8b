package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"dokser_echo/internal/routes"
	"dokser_echo/web/templates/pages"
	"dokser_echo/web/templates/shared"
)

// CustomErrorHandler renders HTTP errors as a themed page.
// Errors under /docs keep the sidebar so readers can navigate away.
func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		c.Logger().Error(err)
		return
	}

	code := http.StatusInternalServerError
	errorTitle := "Internal Server Error"
	errorMessage := ""

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code

		if msg, ok := he.Message.(string); ok && msg != "" {
			errorMessage = msg
		}

		switch code {
		case http.StatusNotFound:
			errorTitle = "Page Not Found"
			if errorMessage == "" || errorMessage == http.StatusText(http.StatusNotFound) {
				errorMessage = "The page you're looking for doesn't exist."
			}
		case http.StatusForbidden:
			errorTitle = "Access Denied"
			if errorMessage == "" {
				errorMessage = "You don't have permission to access this resource."
			}
		case http.StatusUnauthorized:
			errorTitle = "Unauthorized"
			if errorMessage == "" {
				errorMessage = "Please log in to continue."
			}
		case http.StatusBadRequest:
			errorTitle = "Bad Request"
			if errorMessage == "" {
				errorMessage = "The request could not be processed."
			}
		default:
			if code < http.StatusInternalServerError {
				errorTitle = http.StatusText(code)
			}
			if errorMessage == "" {
				errorMessage = "Something went wrong. Please try again later."
			}
		}
	} else {
		errorMessage = "Something went wrong. Please try again later."
	}

	c.Logger().Error(err)

	path := c.Request().URL.Path

	// API clients get JSON, not a page
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/auth/") {
		if jsonErr := c.JSON(code, map[string]string{"error": errorMessage}); jsonErr != nil {
			c.Logger().Error(jsonErr)
		}
		return
	}

	props := pages.ErrorPageProps{
		Title: errorTitle,
		Breadcrumbs: []shared.Breadcrumb{
			{Title: "Home", URL: "/"},
			{Title: "Error", URL: ""},
		},
		ErrorTitle:   errorTitle,
		ErrorMessage: errorMessage,
	}
	if val, ok := c.Get("userEmail").(string); ok {
		props.UserEmail = val
	}

	if path == routes.DocsPrefix || strings.HasPrefix(path, routes.DocsPrefix+"/") {
		props.ActiveNav = "docs"
		props.Sections = routes.DocSections
		props.BackLink = routes.GetStartedHref()
		props.BackText = "Back to the docs"
	}

	c.Response().Status = code

	if c.Request().Method == http.MethodHead {
		if noContentErr := c.NoContent(code); noContentErr != nil {
			c.Logger().Error(noContentErr)
		}
		return
	}

	if renderErr := pages.ErrorPage(props).Render(c.Request().Context(), c.Response()); renderErr != nil {
		// Fallback to plain text if template fails
		c.Logger().Error(fmt.Errorf("failed to render error page: %w", renderErr))
		if !c.Response().Committed {
			_ = c.String(code, errorMessage)
		}
	}
}
