package domain

import "errors"

var (
	ErrNoSession             = errors.New("no active session")
	ErrSessionNotFound       = errors.New("session not found")
	ErrSecretNotFound        = errors.New("secret not found")
	ErrMissingCredentials    = errors.New("required credential fields are missing")
	ErrMissingUserID         = errors.New("session has no user identifier")
	ErrUnsupportedAuthMode   = errors.New("unsupported auth mode")
	ErrUnknownPaymentHistory = errors.New("unknown payment history category")
)

// ConnectivityFailure is shown when a capability call produced no usable
// backend response at all.
const ConnectivityFailure = "Connection failed! Make sure backend is running."

// RemoteError is a structured failure reported by a backend capability. The
// message comes from the backend's error payload.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ConnectivityFailure
}

// FailureMessage normalizes any capability error to a single display string:
// the backend message when present, otherwise the workflow's fallback.
func FailureMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	if fallback != "" {
		return fallback
	}
	return ConnectivityFailure
}
