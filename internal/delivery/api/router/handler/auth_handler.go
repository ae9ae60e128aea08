// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	"cinematch/internal/delivery/api/cookie"
	"cinematch/internal/delivery/api/response"
	"cinematch/internal/errors"
	"cinematch/internal/usecase"

	"github.com/labstack/echo/v4"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required,csvsafe"`
	Email    string `json:"email" validate:"required,email,csvsafe"`
	Password string `json:"password" validate:"required,csvsafe"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for signup, login and logout.
type AuthHandler struct {
	uc     usecase.UserUsecase
	jar    *cookie.Jar
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, jar *cookie.Jar, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		jar:    jar,
		logger: logger,
	}
}

// Signup creates an account and starts a session for it.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	output, err := h.uc.Signup(ctx, usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.jar.Set(c, output.SessionValue, output.MaxAge)

	return response.Created(c, newUserView(h.uc.GetProfile(ctx, output.User)))
}

// Login starts a session for an existing account.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	output, err := h.uc.Login(ctx, usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	h.jar.Set(c, output.SessionValue, output.MaxAge)

	return response.OK(c, newUserView(h.uc.GetProfile(ctx, output.User)))
}

// Logout clears the session cookie. It succeeds with or without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.jar.Clear(c)

	return response.OK(c, map[string]string{"message": "Logged out"})
}
