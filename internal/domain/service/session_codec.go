package service

import "time"

// SessionCodec turns a user id into a session cookie value and back.
type SessionCodec interface {
	// Encode produces the cookie value for a user.
	Encode(userID string) (string, error)

	// Decode recovers the user id from a cookie value.
	Decode(value string) (string, error)

	// MaxAge is the lifetime of an issued session.
	MaxAge() time.Duration
}
