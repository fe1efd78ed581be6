package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEmailAlreadyInUse  = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTPCode     = errors.New("invalid OTP code")
	ErrMFARequired        = errors.New("MFA required")
	ErrAccountNotFound    = errors.New("account not found")
)

// LockoutError is returned while a lockout set by repeated failed logins
// is still in force. RetryAfterMinutes is rounded up so the message never
// reports zero minutes for a live lockout.
type LockoutError struct {
	RetryAfterMinutes int
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("account locked. Try again in %d minutes", e.RetryAfterMinutes)
}

func IsLockout(err error) bool {
	var le *LockoutError
	return errors.As(err, &le)
}
