// Package failure defines the tagged error returned by the lookup gateway so callers
// can branch on the kind of failure instead of the message text.
package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies why a lookup failed.
type Kind string

const (
	// KindNotFound means geocoding returned no match for a direct resolution.
	KindNotFound Kind = "NOT_FOUND"
	// KindService means the remote API answered with a non-success status or an unreadable body.
	KindService Kind = "SERVICE"
	// KindNetwork means no response was received (DNS, timeout, connection reset).
	KindNetwork Kind = "NETWORK"
)

// Error is the single error type produced by the lookup gateway.
type Error struct {
	Kind Kind
	// Op is the human description of the failed call, e.g. "fetching coordinates".
	Op string
	// Query is set for NotFound.
	Query string
	// StatusCode and StatusText are set for Service failures caused by an HTTP status.
	StatusCode int
	StatusText string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		if e.Query == "" {
			return "location not found"
		}
		return fmt.Sprintf("location not found: %s", e.Query)
	case KindService:
		if e.StatusText != "" {
			return fmt.Sprintf("error %s: %s", e.Op, e.StatusText)
		}
		return fmt.Sprintf("error %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("error %s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound builds a KindNotFound error for query.
func NotFound(query string) *Error {
	return &Error{Kind: KindNotFound, Op: "resolving location", Query: query}
}

// Service builds a KindService error from an HTTP status. An empty statusText falls back to
// the standard text for the code.
func Service(op string, statusCode int, statusText string) *Error {
	if statusText == "" {
		statusText = http.StatusText(statusCode)
	}
	return &Error{Kind: KindService, Op: op, StatusCode: statusCode, StatusText: statusText}
}

// BadResponse builds a KindService error for a success status whose body could not be read.
func BadResponse(op string, err error) *Error {
	return &Error{Kind: KindService, Op: op, Err: err}
}

// Network builds a KindNetwork error wrapping the transport cause.
func Network(op string, err error) *Error {
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
func IsService(err error) bool  { return KindOf(err) == KindService }
func IsNetwork(err error) bool  { return KindOf(err) == KindNetwork }
