package guest

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Common errors
var (
	ErrValidation  = errors.New("invalid guest data")
	ErrNotFound    = errors.New("guest not found")
	ErrPersistence = errors.New("guest store unavailable")
)

// ValidationError carries the reason a request was rejected. It matches ErrValidation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// storeErr marks a repository failure as a persistence error
func storeErr(err error) error {
	if err == nil || errors.Is(err, ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

const (
	inviteIDLength   = 8
	inviteIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewInviteID returns a random 8 character token for invitation links
func NewInviteID() string {
	b := make([]byte, inviteIDLength)
	max := big.NewInt(int64(len(inviteIDAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(fmt.Sprintf("guest: crypto/rand failed: %v", err))
		}
		b[i] = inviteIDAlphabet[n.Int64()]
	}
	return string(b)
}
