// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password storage and verification.
type PasswordHasher interface {
	// Hash turns a plaintext password into the value kept in the record store.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored value.
	Check(password, stored string) bool
}
