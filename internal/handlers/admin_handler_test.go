package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dokser_echo/internal/services"
)

func postForm(e *echo.Echo, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUpdateDocWithoutStorage(t *testing.T) {
	e := echo.New()
	h := NewAdminHandler(services.NewContentService(nil, nil))

	c, rec := postForm(e, "/admin/docs/edit", url.Values{"href": {"/DSA/Trees"}, "body": {"<p>draft</p>"}})
	require.NoError(t, h.UpdateDoc(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Content storage is not configured.")
	assert.Contains(t, rec.Body.String(), "&lt;p&gt;draft&lt;/p&gt;", "submitted body is kept in the form")
}

func TestUpdateDocUnknownRoute(t *testing.T) {
	e := echo.New()
	h := NewAdminHandler(services.NewContentService(nil, nil))

	c, _ := postForm(e, "/admin/docs/edit", url.Values{"href": {"/DSA"}, "body": {"x"}})
	err := h.UpdateDoc(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestEditDocPage(t *testing.T) {
	e := echo.New()
	h := NewAdminHandler(services.NewContentService(nil, nil))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/docs/edit?saved=1&href=%2FDSA%2FGraphs", nil), rec)
	require.NoError(t, h.EditDocPage(c))
	assert.Contains(t, rec.Body.String(), "<h1>Graphs</h1>")
	assert.Contains(t, rec.Body.String(), "Saved.")
	assert.Contains(t, rec.Body.String(), " disabled>Save</button>")

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/docs/edit?href=%2Fnope", nil), httptest.NewRecorder())
	var he *echo.HTTPError
	require.ErrorAs(t, h.EditDocPage(c), &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestIsEditor(t *testing.T) {
	open := NewAuthHandler(nil, nil)
	assert.Empty(t, open.editors)
	assert.True(t, open.isEditor(&auth.Token{Claims: map[string]interface{}{}}))

	restricted := NewAuthHandler(nil, []string{" Editor@Example.com ", ""})
	assert.Equal(t, map[string]bool{"editor@example.com": true}, restricted.editors)
	assert.True(t, restricted.isEditor(&auth.Token{Claims: map[string]interface{}{"email": "EDITOR@example.com"}}))
	assert.False(t, restricted.isEditor(&auth.Token{Claims: map[string]interface{}{"email": "reader@example.com"}}))
	assert.False(t, restricted.isEditor(&auth.Token{}))
}
