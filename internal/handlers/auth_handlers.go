package handlers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"dokser_echo/internal/middleware"
	"dokser_echo/web/templates/pages"
)

// sessionDuration is how long an editor stays signed in
const sessionDuration = time.Hour * 24 * 5

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authClient *auth.Client
	editors    map[string]bool // allowed emails; empty allows any verified account
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authClient *auth.Client, editorEmails []string) *AuthHandler {
	editors := make(map[string]bool, len(editorEmails))
	for _, email := range editorEmails {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			editors[email] = true
		}
	}
	return &AuthHandler{authClient: authClient, editors: editors}
}

func (h *AuthHandler) isEditor(token *auth.Token) bool {
	if len(h.editors) == 0 {
		return true
	}
	email, _ := token.Claims["email"].(string)
	return h.editors[strings.ToLower(email)]
}

// LoginPage renders the editor sign-in page
func (h *AuthHandler) LoginPage(c echo.Context) error {
	props := pages.LoginProps{
		Title:              "Sign in",
		FirebaseAPIKey:     os.Getenv("FIREBASE_API_KEY"),
		FirebaseAuthDomain: os.Getenv("FIREBASE_AUTH_DOMAIN"),
		FirebaseProjectID:  os.Getenv("FIREBASE_PROJECT_ID"),
	}
	if c.QueryParam("error") == "auth_not_configured" {
		props.Error = "Sign-in is not configured on this server."
	}
	return pages.Login(props).Render(c.Request().Context(), c.Response())
}

// HandleLogin verifies the Firebase ID token and creates a session cookie
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	if h.authClient == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Firebase not initialized",
		})
	}

	// Get ID Token from Authorization Header
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Missing authorization header",
		})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid authorization format",
		})
	}

	token, err := h.authClient.VerifyIDToken(c.Request().Context(), tokenString)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid token",
		})
	}
	if !h.isEditor(token) {
		return c.JSON(http.StatusForbidden, map[string]string{
			"error": "Account is not allowed to edit documentation",
		})
	}

	cookieValue, err := h.authClient.SessionCookie(c.Request().Context(), tokenString, sessionDuration)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create session",
		})
	}

	// Set HTTP-Only Cookie
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    cookieValue,
		MaxAge:   int(sessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   os.Getenv("ENV") == "production",
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, map[string]string{
		"status": "success",
	})
}

// HandleLogout clears the session cookie
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, map[string]string{
		"status": "logged out",
	})
}
