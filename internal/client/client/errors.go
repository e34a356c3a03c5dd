package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request")
)

// GenericFailureMessage is used when a failed response carries no readable
// message.
const GenericFailureMessage = "request failed"

// NetworkError reports a call that never produced a usable response: the
// server was unreachable, the body could not be read, or a 2xx body was not
// valid JSON. It matches ErrUnavailable.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrUnavailable }

// Timeout reports whether the failure was a deadline or transport timeout.
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// ApplicationError is a non-2xx answer from the backend. Message is taken
// from the response body; Generic is set when the body had none and Message
// holds GenericFailureMessage. 401 and 403 match ErrUnauthorized.
type ApplicationError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Generic    bool
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Endpoint, e.Message, e.StatusCode)
}

func (e *ApplicationError) Is(target error) bool {
	if target != ErrUnauthorized {
		return false
	}
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
