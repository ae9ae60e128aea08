// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cinematch/internal/domain/entity"
)

// UserRepository is the record store for user accounts.
// A missing record is reported through the boolean result, never as an error.
type UserRepository interface {
	// ReadAll loads every stored record in file order.
	ReadAll(ctx context.Context) ([]*entity.User, error)

	// FindByEmail returns the first record whose email matches exactly.
	FindByEmail(ctx context.Context, email string) (*entity.User, bool, error)

	// FindByID returns the record with the given id.
	FindByID(ctx context.Context, id string) (*entity.User, bool, error)

	// Insert appends a new record. It fails with ErrDuplicateEmail when the email is taken.
	Insert(ctx context.Context, user *entity.User) (*entity.User, error)

	// Replace merges the patch onto the stored record with the same id and rewrites the store.
	// It returns false, without error, when no such record exists.
	Replace(ctx context.Context, patch *entity.Patch) (*entity.User, bool, error)
}
