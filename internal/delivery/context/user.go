package context

import (
	"cinematch/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the key for storing the authenticated user in echo.Context.
const KeyUser ContextKey = "user"

// SetUser stores the user resolved from the session cookie.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the authenticated user, or nil outside the session gate.
func GetUser(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyUser)).(*entity.User); ok {
		return user
	}

	return nil
}
