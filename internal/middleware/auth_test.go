package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuthWithoutFirebase(t *testing.T) {
	e := echo.New()
	called := false
	h := RequireAuth(nil)(func(c echo.Context) error {
		called = true
		return nil
	})

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(method, "/admin/docs/edit", nil), rec)

		require.NoError(t, h(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code, method)
		assert.Equal(t, "/login?error=auth_not_configured", rec.Header().Get(echo.HeaderLocation), method)
	}
	assert.False(t, called)
}
