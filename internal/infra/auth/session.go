package auth

import (
	"time"

	"cinematch/config"
	"cinematch/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInvalidSession is returned when a cookie value cannot be mapped to a user id.
var ErrInvalidSession = errors.New("invalid session")

// NewSessionCodec returns the codec selected by session.mode.
func NewSessionCodec(cfg *config.Config) (service.SessionCodec, error) {
	switch cfg.Session.Mode {
	case config.SessionModePlain:
		return NewPlainSessionCodec(cfg.Session.MaxAge), nil
	case config.SessionModeJWT:
		return NewJWTSessionCodec(cfg.Session.Secret, cfg.Session.MaxAge)
	default:
		return nil, errors.Errorf("unknown session mode: %q", cfg.Session.Mode)
	}
}

// plainSessionCodec uses the raw user id as the cookie value.
type plainSessionCodec struct {
	maxAge time.Duration
}

// NewPlainSessionCodec returns a SessionCodec whose cookie value is the user id itself.
func NewPlainSessionCodec(maxAge time.Duration) service.SessionCodec {
	return &plainSessionCodec{maxAge: maxAge}
}

func (c *plainSessionCodec) Encode(userID string) (string, error) {
	if userID == "" {
		return "", ErrInvalidSession
	}

	return userID, nil
}

func (c *plainSessionCodec) Decode(value string) (string, error) {
	if value == "" {
		return "", ErrInvalidSession
	}

	return value, nil
}

func (c *plainSessionCodec) MaxAge() time.Duration {
	return c.maxAge
}

// jwtSessionCodec signs the user id into an HS256 token that expires with the cookie.
type jwtSessionCodec struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewJWTSessionCodec is the constructor for jwtSessionCodec.
func NewJWTSessionCodec(secret string, maxAge time.Duration) (service.SessionCodec, error) {
	if secret == "" {
		return nil, errors.New("jwt session secret must be provided")
	}

	return &jwtSessionCodec{
		secret: []byte(secret),
		maxAge: maxAge,
		now:    time.Now,
	}, nil
}

func (c *jwtSessionCodec) Encode(userID string) (string, error) {
	if userID == "" {
		return "", ErrInvalidSession
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.maxAge)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

func (c *jwtSessionCodec) Decode(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", errors.Wrap(ErrInvalidSession, err.Error())
	}

	if claims.Subject == "" {
		return "", ErrInvalidSession
	}

	return claims.Subject, nil
}

func (c *jwtSessionCodec) MaxAge() time.Duration {
	return c.maxAge
}
