package validator

import (
	"testing"

	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required,csvsafe"`
	Email    string `json:"email" validate:"required,email,csvsafe"`
	Password string `json:"password" validate:"required,min=6,csvsafe"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name        string
		req         signupRequest
		wantDetails string
	}{
		{name: "valid", req: signupRequest{Name: "Ann", Email: "a@x.com", Password: "secret1"}},
		{name: "missing name", req: signupRequest{Email: "a@x.com", Password: "secret1"}, wantDetails: "name is required"},
		{name: "bad email", req: signupRequest{Name: "Ann", Email: "ann", Password: "secret1"}, wantDetails: "email must be a valid email"},
		{name: "short password", req: signupRequest{Name: "Ann", Email: "a@x.com", Password: "12345"}, wantDetails: "password must be at least 6 characters"},
		{name: "comma in name", req: signupRequest{Name: "Smith, Ann", Email: "a@x.com", Password: "secret1"}, wantDetails: "name must not contain commas or line breaks"},
		{name: "newline in password", req: signupRequest{Name: "Ann", Email: "a@x.com", Password: "secret\n1"}, wantDetails: "password must not contain commas or line breaks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)

			if tt.wantDetails == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.wantDetails)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	err := New().Validate(signupRequest{})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "name is required")
	assert.Contains(t, appErr.Details(), "email is required")
	assert.Contains(t, appErr.Details(), "password is required")
}
