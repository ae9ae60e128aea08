package middleware

import (
	"log/slog"

	"cinematch/internal/delivery/api/cookie"
	deliverycontext "cinematch/internal/delivery/context"
	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/errors"
	"cinematch/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware admits requests that carry a session for a stored user.
type SessionMiddleware struct {
	users  usecase.UserUsecase
	jar    *cookie.Jar
	logger *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(users usecase.UserUsecase, jar *cookie.Jar, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{users: users, jar: jar, logger: logger}
}

// Authenticate resolves the session cookie to the current user record and
// places it on the request. A cookie that no longer resolves is cleared.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		value, ok := m.jar.Value(c)
		if !ok {
			return domainerrors.ErrUnauthenticated.WrapMessage("no session cookie")
		}

		ctx := c.Request().Context()
		user, err := m.users.ResolveSession(ctx, value)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthenticated) {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("Clearing stale session cookie", slog.Any("error", err))
				m.jar.Clear(c)
			}

			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}
