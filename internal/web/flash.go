package web

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const flashCookieName = "flash"

// Flash is a one-shot message surviving exactly one redirect.
type Flash struct {
	Message  string
	Category string
}

// SetFlash stores a flash message in a cookie for the next request.
func SetFlash(c echo.Context, message, category string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})
}

// PopFlash returns the pending flash message, if any, and clears it.
func PopFlash(c echo.Context) *Flash {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// Clear regardless of whether the value decodes.
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	category, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}
	return &Flash{Message: message, Category: category}
}
