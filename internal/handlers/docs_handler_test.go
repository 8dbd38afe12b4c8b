package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dokser_echo/internal/services"
	"dokser_echo/web/templates/shared"
)

func TestDocBreadcrumbs(t *testing.T) {
	assert.Equal(t, []shared.Breadcrumb{
		{Title: "Home", URL: "/"},
		{Title: "Docs", URL: "/docs"},
		{Title: "AI/ML/DL", URL: ""},
		{Title: "Deep-learning", URL: ""},
	}, docBreadcrumbs("/AI/Deep-learning"))
}

func TestDocsShow(t *testing.T) {
	e := echo.New()
	h := NewDocsHandler(services.NewContentService(nil, nil))

	tests := []struct {
		name    string
		param   string
		status  int
		heading string
	}{
		{name: "declared page", param: "getting-started/introduction", status: http.StatusOK, heading: "<h1>Introduction</h1>"},
		{name: "trailing slash", param: "DSA/Arrays/", status: http.StatusOK, heading: "<h1>Arrays</h1>"},
		{name: "grouping node", param: "AI", status: http.StatusNotFound},
		{name: "unknown", param: "missing", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/docs/"+tt.param, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("*")
			c.SetParamValues(tt.param)

			err := h.Show(c)
			if tt.status != http.StatusOK {
				var he *echo.HTTPError
				require.ErrorAs(t, err, &he)
				assert.Equal(t, tt.status, he.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.heading)
		})
	}
}

func TestHomeUsesFirstPage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, NewHomeHandler("").Home(c))
	assert.Contains(t, rec.Body.String(), `href="/docs/getting-started/introduction"`)
	assert.Contains(t, rec.Body.String(), `data-interval="100"`)
}

func TestGetStringFromContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, "", getStringFromContext(c, "userEmail"))
	c.Set("userEmail", "editor@example.com")
	assert.Equal(t, "editor@example.com", getStringFromContext(c, "userEmail"))
	c.Set("userEmail", 42)
	assert.Equal(t, "", getStringFromContext(c, "userEmail"))
}
