// Package uierr turns classified errors into the short messages the forms
// display.
package uierr

import (
	"github.com/tradesage/tradesage-client/authapi"
	ierrors "github.com/tradesage/tradesage-client/internal/errors"
)

// Message maps an error onto a user-presentable line. Backend-provided
// messages win; classified errors fall back to a canned line per class.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *authapi.APIError
	if ierrors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	switch {
	case ierrors.Is(err, ierrors.ErrTimeout):
		return "Request timeout. Please try again."
	case ierrors.Is(err, ierrors.ErrNetwork):
		return "Network error. Please check your connection."
	case ierrors.Is(err, ierrors.ErrInvalidCredentials):
		return "Invalid email or password."
	case ierrors.Is(err, ierrors.ErrConflict):
		return "User already exists with this email."
	case ierrors.Is(err, ierrors.ErrFeatureUnavailable):
		return "Registration is not available in demo mode."
	default:
		return err.Error()
	}
}
