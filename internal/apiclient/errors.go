package apiclient

import (
	"errors"

	apperrors "github.com/kiran7893/talenthub-frontend/pkg/errors"
)

// User-facing messages.
const (
	MsgInvalidCredentials = "Invalid email or password."
	MsgGeneric            = "Something went wrong. Please try again."
	MsgConnectivity       = "Something went wrong. Please check your connection and try again."
)

// ErrMissingBaseURL is returned by New when no API base URL is configured.
var ErrMissingBaseURL = apperrors.Config("API base URL is not configured (set API_URL)")

// Kind classifies a failed API call.
type Kind int

const (
	// KindAuth is a rejected credential or token (HTTP 401).
	KindAuth Kind = iota + 1
	// KindRemote is any other non-2xx answer, carrying the API's message.
	KindRemote
	// KindUnavailable is a transport failure, an open circuit or an
	// unreadable success body.
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindRemote:
		return "remote"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is returned by every Client method. Message is safe to display.
type Error struct {
	Status  int
	Message string
	Kind    Kind
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the matching pkg/errors sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	var sentinel error
	switch e.Kind {
	case KindAuth:
		sentinel = apperrors.ErrUnauthorized
	case KindRemote:
		sentinel = apperrors.ErrInvalidInput
	default:
		sentinel = apperrors.ErrServiceUnavail
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// Message returns the displayable message carried by err.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return MsgConnectivity
}
