package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a server-reported failure: a non-2xx status whose body
// carried an {"error": "..."} message (or a caller-supplied fallback when
// the body was unparsable).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("http status %d: %s", e.Status, http.StatusText(e.Status))
}

// NetworkError wraps a transport-level failure so callers can tell
// "server said no" from "server unreachable".
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError means the response arrived with a success status but the
// body could not be decoded.
type DecodeError struct {
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed (status=%d): %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err originated in transport rather than
// from a server response.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
