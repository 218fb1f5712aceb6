package authapi

import (
	stderrors "errors"
	"fmt"
	"net"

	ierrors "github.com/tradesage/tradesage-client/internal/errors"
)

// APIError carries the HTTP status and a user-presentable message alongside
// the classified sentinel from internal/errors.
type APIError struct {
	Status  int
	Message string
	class   error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.class
}

func newAPIError(status int, message string, class error) *APIError {
	return &APIError{Status: status, Message: message, class: class}
}

// classifyTransport maps a transport-level failure onto the error taxonomy.
// A timed-out call is a distinct class from an unreachable host so that
// diagnostics can tell the two apart.
func classifyTransport(err error) *APIError {
	var ne net.Error
	if stderrors.As(err, &ne) && ne.Timeout() {
		return newAPIError(0, "Request timeout. Please try again.", ierrors.ErrTimeout)
	}
	return newAPIError(0, "Network error. Please check your connection.", ierrors.ErrNetwork)
}
