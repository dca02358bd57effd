package httpwire

import (
	"errors"
	"fmt"
)

// Sentinel errors for request parsing failures. All of them are recovered
// locally by the server with a 400 response; none should ever escape a
// connection goroutine.
var (
	// ErrMalformedRequestLine is returned when the request line cannot be
	// split into method, path and version.
	ErrMalformedRequestLine = errors.New("httpwire: malformed request line")

	// ErrUnsupportedMethod is returned for any method other than GET or POST.
	ErrUnsupportedMethod = errors.New("httpwire: unsupported method")

	// ErrMalformedHeader is returned when a header line has no colon.
	ErrMalformedHeader = errors.New("httpwire: malformed header")

	// ErrTruncatedBody is returned when the stream ends before the declared
	// Content-Length is satisfied.
	ErrTruncatedBody = errors.New("httpwire: truncated body")

	// ErrMalformedForm is returned when a form body pair has no '=' or fails
	// to unescape.
	ErrMalformedForm = errors.New("httpwire: malformed form body")
)

// ParseError wraps a parsing failure with the operation that produced it.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *ParseError) Unwrap() error { return e.Err }
