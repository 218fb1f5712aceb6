package errors

import (
	"errors"
	"fmt"
)

// Classified error values for the TradeSage client. Every operation that can
// fail resolves to one of these via errors.Is, so callers branch on the class
// rather than parsing messages.
var (
	// Transport errors
	ErrNetwork = errors.New("network error")
	ErrTimeout = errors.New("request timeout")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid token")
	ErrRefreshFailed      = errors.New("token refresh failed")

	// Registration errors
	ErrConflict           = errors.New("user already exists with this email")
	ErrFeatureUnavailable = errors.New("feature unavailable while backend is unreachable")

	// Persistence errors
	ErrCorruptState = errors.New("corrupt persisted state")

	// General errors
	ErrInternal = errors.New("internal error")
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

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
