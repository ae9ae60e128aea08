// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"cinematch/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput carries the session to hand back to the client after signup or login.
type SessionOutput struct {
	User         *entity.User
	SessionValue string
	MaxAge       time.Duration
}

// ProfileOutput is the current user as shown to them. Password is never included.
// QuizResults is nil when the quiz was not taken; RawQuizResults keeps a stored
// payload that could not be parsed.
type ProfileOutput struct {
	ID             string
	Email          string
	Name           string
	QuizResults    *entity.QuizResults
	RawQuizResults string
}

// UserUsecase defines the interface for account and session operations.
type UserUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*SessionOutput, error)
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// ResolveSession maps a session cookie value to the stored user.
	// It fails with ErrUnauthenticated when the value or the user is unknown.
	ResolveSession(ctx context.Context, value string) (*entity.User, error)

	GetProfile(ctx context.Context, user *entity.User) *ProfileOutput
}
