package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer       = "wedding-rsvp"
	adminSubject = "admin"
)

// Common errors
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidSession  = errors.New("invalid or expired session")
)

// Sessions issues and verifies HMAC signed admin session tokens
type Sessions struct {
	secret   []byte
	password [sha256.Size]byte
	ttl      time.Duration
}

// NewSessions creates a session manager for the single admin password
func NewSessions(secret, password string, ttl time.Duration) *Sessions {
	return &Sessions{
		secret:   []byte(secret),
		password: sha256.Sum256([]byte(password)),
		ttl:      ttl,
	}
}

// TTL is how long an issued session stays valid
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// CheckPassword compares password with the configured one in constant time
func (s *Sessions) CheckPassword(password string) error {
	sum := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(sum[:], s.password[:]) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

// Issue signs a new admin session token
func (s *Sessions) Issue(now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session: %w", err)
	}
	return token, expiresAt, nil
}

// Verify checks the token signature and expiry and returns its subject
func (s *Sessions) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidSession
	}
	if claims.Subject != adminSubject {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}
