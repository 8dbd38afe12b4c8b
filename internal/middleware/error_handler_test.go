package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func handle(method, path string, err error) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, path, nil), rec)
	CustomErrorHandler(err, c)
	return rec
}

func TestCustomErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		code     int
		contains []string
	}{
		{
			name:     "docs 404 keeps sidebar",
			path:     "/docs/missing",
			err:      echo.ErrNotFound,
			code:     http.StatusNotFound,
			contains: []string{"Page Not Found", "The page you&#39;re looking for doesn&#39;t exist.", `class="sidebar"`, "Back to the docs"},
		},
		{
			name:     "blog 404 with custom message",
			path:     "/blog/missing",
			err:      echo.NewHTTPError(http.StatusNotFound, "Post not found"),
			code:     http.StatusNotFound,
			contains: []string{"Post not found", "Back to home"},
		},
		{
			name:     "plain error is a 500",
			path:     "/",
			err:      errors.New("boom"),
			code:     http.StatusInternalServerError,
			contains: []string{"Internal Server Error", "Something went wrong"},
		},
		{
			name:     "api errors are json",
			path:     "/api/routes",
			err:      echo.NewHTTPError(http.StatusBadRequest, "bad"),
			code:     http.StatusBadRequest,
			contains: []string{`{"error":"bad"}`},
		},
		{
			name:     "method not allowed uses status text",
			path:     "/blog",
			err:      echo.ErrMethodNotAllowed,
			code:     http.StatusMethodNotAllowed,
			contains: []string{"Method Not Allowed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := handle(http.MethodGet, tt.path, tt.err)
			assert.Equal(t, tt.code, rec.Code)
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestCustomErrorHandlerHead(t *testing.T) {
	rec := handle(http.MethodHead, "/docs/missing", echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
