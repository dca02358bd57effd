package server

import (
	"errors"
	"fmt"
)

var (
	// ErrServerClosed is returned by Serve after Shutdown closes the
	// listener.
	ErrServerClosed = errors.New("server: server closed")

	// ErrAlreadyServing is returned when Listen is called twice.
	ErrAlreadyServing = errors.New("server: already serving")

	// ErrNotListening is returned by Serve before Listen has bound the
	// socket.
	ErrNotListening = errors.New("server: not listening")
)

// HandlerError wraps a panic recovered from a route handler. It is logged
// and converted into a 500 response; it never escapes the connection
// goroutine.
type HandlerError struct {
	Path  string
	Panic any
	Stack []byte
}

// Error returns the error message.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("server: handler panic on %s: %v", e.Path, e.Panic)
}
