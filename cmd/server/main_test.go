package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dokser_echo/internal/routes"
)

func serve(t *testing.T, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := newServer(serverDeps{githubURL: "https://github.com/example/docs"})

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLandingPage(t *testing.T) {
	rec := serve(t, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/docs/getting-started/introduction">Get Started</a>`)
	assert.Contains(t, rec.Body.String(), `href="/blog">Read Blog</a>`)
	assert.Contains(t, rec.Body.String(), `https://github.com/example/docs`)
}

func TestDocsIndexRedirectsToFirstPage(t *testing.T) {
	for _, target := range []string{"/docs", "/docs/"} {
		rec := serve(t, http.MethodGet, target, "")
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code, target)
		assert.Equal(t, "/docs/getting-started/introduction", rec.Header().Get("Location"), target)
	}
}

func TestDocPage(t *testing.T) {
	rec := serve(t, http.MethodGet, "/docs/DSA/Queues", "")

	require.Equal(t, http.StatusOK, rec.Code)
	html := rec.Body.String()
	assert.Contains(t, html, `<h1>Queues</h1>`)
	assert.Contains(t, html, "This page has no content yet.")
	assert.Contains(t, html, `href="/docs/DSA/Queues" class="active"`)
	assert.Contains(t, html, `<a rel="next" href="/docs/DSA/Trees">`)
	assert.Contains(t, html, `<span>DSA</span>`, "grouping section is an unlinked crumb")
}

func TestUnknownDocPage(t *testing.T) {
	for _, target := range []string{"/docs/DSA", "/docs/nope", "/docs/dsa/arrays"} {
		rec := serve(t, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "Page Not Found", target)
		assert.Contains(t, rec.Body.String(), `class="sidebar"`, target)
	}
}

func TestRoutesAPI(t *testing.T) {
	rec := serve(t, http.MethodGet, "/api/routes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var pages []routes.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pages))
	assert.Equal(t, routes.PageRoutes, pages)

	rec = serve(t, http.MethodGet, "/api/sections", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var sections []routes.Section
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sections))
	assert.Equal(t, routes.DocSections, sections)
}

func TestUnknownAPIRouteIsJSON(t *testing.T) {
	rec := serve(t, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestBlogWithoutStorage(t *testing.T) {
	rec := serve(t, http.MethodGet, "/blog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No posts yet")

	rec = serve(t, http.MethodGet, "/blog/hello-world", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post not found")
}

func TestAdminRequiresAuth(t *testing.T) {
	rec := serve(t, http.MethodGet, "/admin/docs", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?error=auth_not_configured", rec.Header().Get("Location"))

	form := url.Values{"href": {"/DSA/Arrays"}, "body": {"<p>x</p>"}}
	rec = serve(t, http.MethodPost, "/admin/docs/edit", form.Encode())
	require.Equal(t, http.StatusSeeOther, rec.Code, "a form post must be turned into a GET of the login page")

	// Follow the redirect the way a browser does for a 303
	location := rec.Header().Get("Location")
	rec = serve(t, http.MethodGet, location, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign-in is not configured")
}

func TestLoginWithoutFirebase(t *testing.T) {
	rec := serve(t, http.MethodGet, "/login?error=auth_not_configured", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign-in is not configured")

	rec = serve(t, http.MethodPost, "/auth/login", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Firebase not initialized")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, splitList(" a@example.com, ,b@example.com "))
	assert.Nil(t, splitList(""))
}
