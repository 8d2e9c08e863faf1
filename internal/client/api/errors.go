package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means no usable response reached us: connection
	// refused, timeout, DNS failure.
	ErrUnavailable = errors.New("server unavailable")

	// ErrSessionExpired means an authenticated call came back 401. By the
	// time a caller sees it the stored credential has already been cleared.
	ErrSessionExpired = errors.New("session expired")
)

// AuthError is a rejected login attempt. Reason carries the server-supplied
// message when the response body was parsable, a generic fallback otherwise.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Reason
}

// StatusError is any non-401 error status from the API. Body holds the raw
// response payload for callers that want to surface server detail.
type StatusError struct {
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// IsClientError reports whether err is a 4xx StatusError.
func IsClientError(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status >= 400 && se.Status < 500
}

// IsServerError reports whether err is a 5xx StatusError.
func IsServerError(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status >= 500
}
