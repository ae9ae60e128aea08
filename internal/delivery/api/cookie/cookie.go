// Package cookie issues and clears the session cookie.
package cookie

import (
	"net/http"
	"time"

	"cinematch/config"

	"github.com/labstack/echo/v4"
)

// Jar writes the session cookie with the configured name and flags.
type Jar struct {
	name   string
	secure bool
}

// NewJar creates a Jar from the session configuration.
func NewJar(cfg *config.Config) *Jar {
	return &Jar{
		name:   cfg.Session.CookieName,
		secure: cfg.Session.Secure,
	}
}

// Set issues the session cookie.
func (j *Jar) Set(c echo.Context, value string, maxAge time.Duration) {
	c.SetCookie(j.cookie(value, int(maxAge.Seconds())))
}

// Clear expires the session cookie in the browser.
func (j *Jar) Clear(c echo.Context) {
	ck := j.cookie("", -1)
	ck.Expires = time.Unix(0, 0)
	c.SetCookie(ck)
}

// Value returns the session cookie sent with the request, if any.
func (j *Jar) Value(c echo.Context) (string, bool) {
	ck, err := c.Cookie(j.name)
	if err != nil || ck.Value == "" {
		return "", false
	}

	return ck.Value, true
}

func (j *Jar) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     j.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
