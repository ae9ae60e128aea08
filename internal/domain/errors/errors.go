package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches e under errors.Is.
func (e *BaseError) WithDetails(details string) error {
	return &detailedError{BaseError: BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}, origin: e}
}

type detailedError struct {
	BaseError
	origin *BaseError
}

func (e *detailedError) Is(target error) bool {
	return target == e.origin
}

var (
	// Record store errors
	ErrDuplicateEmail = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_EMAIL",
		"An account with this email already exists.",
		"",
	)

	ErrStorageUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORAGE_UNAVAILABLE",
		"An unexpected error occurred. Please try again.",
		"",
	)

	ErrStorageWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_WRITE_FAILED",
		"Could not update user data due to a write error.",
		"",
	)

	// User and session errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"User not authenticated.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"An unexpected error occurred. Please try again.",
		"",
	)

	// Quiz and recommendation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid fields.",
		"",
	)

	ErrQuizIncomplete = NewBaseError(
		http.StatusBadRequest,
		"QUIZ_INCOMPLETE",
		"Please complete all personality sections.",
		"",
	)

	ErrQuizNotCompleted = NewBaseError(
		http.StatusConflict,
		"QUIZ_NOT_COMPLETED",
		"Take the quiz before asking for recommendations.",
		"",
	)

	ErrRecommendationFailed = NewBaseError(
		http.StatusBadGateway,
		"RECOMMENDATION_FAILED",
		"Could not generate film recommendations. Please try again.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An unexpected error occurred. Please try again.",
		"",
	)
)
