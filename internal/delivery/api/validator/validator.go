// Package validator binds go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/errors"

	"github.com/go-playground/validator/v10"
)

// TagCSVSafe rejects values the user table cannot hold: commas and line breaks.
const TagCSVSafe = "csvsafe"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the request validator with the project's custom rules registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(TagCSVSafe, csvSafe)

	return &CustomValidator{validate: v}
}

// Validate checks i and reports every failed field as ErrValidationFailed details.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case TagCSVSafe:
		return fe.Field() + " must not contain commas or line breaks"
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

func csvSafe(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), ",\r\n")
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}
