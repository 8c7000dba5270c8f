package errs

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	// ErrNoSession means a protected action was attempted with no stored token.
	ErrNoSession = errors.New("no session token")
	// ErrUnauthorized is the client-side mapping of an upstream 401.
	ErrUnauthorized = errors.New("authentication failed")
)

// RequestError is the generic "request failed" condition raised for any
// non-success upstream response. It carries the operation name for diagnostics;
// structured server error bodies are not parsed beyond this boundary.
type RequestError struct {
	Op   string
	Code int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: request failed with status %d", e.Op, e.Code)
}

// Request maps a non-2xx upstream status to the client error taxonomy.
func Request(op string, code int) error {
	if code == http.StatusUnauthorized {
		return errors.Wrap(ErrUnauthorized, op)
	}
	return &RequestError{Op: op, Code: code}
}

// StatusCode extracts the upstream status from err, falling back to 502 so a
// collaborator failure is never reported as the gateway's own fault.
func StatusCode(err error) int {
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNoSession) {
		return http.StatusUnauthorized
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Code
	}
	return http.StatusBadGateway
}
