// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the single persisted record of the system.
// QuizResults is kept as the serialized payload; see QuizResults for the typed form.
type User struct {
	ID          string // Opaque identifier assigned at signup. Never reused.
	Email       string // Login key, unique across all records (case-sensitive).
	Password    string // Plaintext or a hash, depending on the configured password scheme.
	Name        string // Display name.
	QuizResults string // Empty, or a complete JSON serialization of QuizResults.
}

// HasQuizResults reports whether the user has submitted the quiz.
func (u *User) HasQuizResults() bool {
	return u.QuizResults != ""
}

// Patch describes a whole-record replacement keyed by ID.
// Nil fields keep the stored value.
type Patch struct {
	ID          string
	Email       *string
	Password    *string
	Name        *string
	QuizResults *string
}
