package handler

import (
	"log/slog"

	"cinematch/internal/delivery/api/response"
	deliverycontext "cinematch/internal/delivery/context"
	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the current user's record.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// Me returns the user resolved by the session gate, without the password.
func (h *UserHandler) Me(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("no user on request")
	}

	return response.OK(c, newUserView(h.uc.GetProfile(c.Request().Context(), user)))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
