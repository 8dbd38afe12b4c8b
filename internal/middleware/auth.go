package middleware

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

// SessionCookie is the name of the cookie holding the Firebase session
const SessionCookie = "session"

// loginRedirect is a 303 so an expired session on a form POST lands on GET /login
const loginRedirect = http.StatusSeeOther

// RequireAuth returns a middleware that verifies Firebase session cookies
// and puts the editor's email on the context.
func RequireAuth(authClient *auth.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if authClient == nil {
				return c.Redirect(loginRedirect, "/login?error=auth_not_configured")
			}

			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.Redirect(loginRedirect, "/login")
			}

			// checkRevoked so signing out elsewhere ends editor sessions here too
			decodedToken, err := authClient.VerifySessionCookieAndCheckRevoked(c.Request().Context(), cookie.Value)
			if err != nil {
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    "",
					MaxAge:   -1,
					HttpOnly: true,
					Path:     "/",
				})
				return c.Redirect(loginRedirect, "/login")
			}

			if email, ok := decodedToken.Claims["email"].(string); ok {
				c.Set("userEmail", email)
			}

			// Editor pages must not be cached by shared proxies
			c.Response().Header().Set("Cache-Control", "no-store")
			return next(c)
		}
	}
}
