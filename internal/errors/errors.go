package errors

import (
	"errors"
	"fmt"
)

// Common error types for the demo server
var (
	// Configuration errors
	ErrNotConfigured   = errors.New("twitter api credentials not configured")
	ErrNoSessionSecret = errors.New("session secret not configured")

	// Handshake errors
	ErrMissingCallbackParams = errors.New("missing oauth_token or oauth_verifier")
	ErrNoPendingHandshake    = errors.New("no pending handshake in session")
	ErrUpstream              = errors.New("upstream twitter call failed")

	// Validation errors
	ErrEmptyStatus   = errors.New("status cannot be empty")
	ErrStatusTooLong = errors.New("status exceeds 280 characters")

	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionNotFound  = errors.New("session not found")
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
