package errors

import (
	"errors"
	"fmt"
)

// Common error types for the blog client
var (
	// Authentication errors
	ErrLoginFailed        = errors.New("login failed")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// ErrSessionExpired means a session was present but past its expiry. It
	// matches ErrNotAuthenticated so callers can treat both as logged out.
	ErrSessionExpired = fmt.Errorf("session expired: %w", ErrNotAuthenticated)

	// Backend errors
	ErrRequestFailed = errors.New("request failed")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")

	// Store errors
	ErrStoreUnavailable = errors.New("session store unavailable")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
