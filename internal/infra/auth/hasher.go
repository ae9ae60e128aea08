// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/subtle"

	"cinematch/config"
	"cinematch/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// NewPasswordHasher returns the hasher selected by auth.passwordScheme.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	switch cfg.Auth.PasswordScheme {
	case config.PasswordSchemePlain:
		return NewPlainHasher(), nil
	case config.PasswordSchemeBcrypt:
		return NewBcryptHasher(cfg.Auth.BcryptCost), nil
	default:
		return nil, errors.Errorf("unknown password scheme: %q", cfg.Auth.PasswordScheme)
	}
}

// plainHasher stores passwords verbatim, keeping tables written by older deployments readable.
type plainHasher struct{}

// NewPlainHasher returns a PasswordHasher that performs no hashing.
func NewPlainHasher() service.PasswordHasher {
	return plainHasher{}
}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plainHasher) Check(password, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// A cost outside bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}

	return string(hash), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
