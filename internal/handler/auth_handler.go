package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orderdash/internal/auth"
	"orderdash/internal/errors"
	"orderdash/internal/service"
	"orderdash/internal/web"
)

// AuthHandler handles the login and logout routes.
type AuthHandler struct {
	authService  service.AuthService
	sessions     *auth.SessionService
	sessionStore auth.SessionStoreInterface
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *auth.SessionService, sessionStore auth.SessionStoreInterface) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, sessionStore: sessionStore}
}

// LoginForm represents the login form fields.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type loginData struct {
	Flash *web.Flash
}

// ShowLogin renders the login form, or short-circuits to the dashboard when a
// valid session cookie is already present.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	if h.authenticated(c) {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.Render(http.StatusOK, "login.html", loginData{Flash: web.PopFlash(c)})
}

// Login authenticates the posted credentials and establishes the session.
func (h *AuthHandler) Login(c echo.Context) error {
	if h.authenticated(c) {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		return h.renderLoginFailure(c)
	}

	_, token, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return h.renderLoginFailure(c)
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	web.SetFlash(c, "Welcome back!", "success")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout revokes the current session, clears the cookie, and redirects to the
// login page. Safe to call without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			c.Logger().Warnf("revoke session: %v", err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, "/login")
}

// renderLoginFailure re-renders the form with the generic failure message.
// Missing fields, unknown usernames, and wrong passwords all look the same.
func (h *AuthHandler) renderLoginFailure(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginData{
		Flash: &web.Flash{Message: "Invalid credentials.", Category: "danger"},
	})
}

// authenticated applies the same acceptance rule as the secured route guard:
// the cookie must parse and its session must not be revoked. Anything weaker
// would bounce a revoked session between /login and /dashboard forever.
func (h *AuthHandler) authenticated(c echo.Context) bool {
	cookie, err := c.Cookie(auth.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	claims, err := h.sessions.Parse(cookie.Value)
	if err != nil {
		return false
	}
	revoked, _ := h.sessionStore.IsRevoked(c.Request().Context(), claims.ID)
	return !revoked
}
