// Package router implements the route table: an exact-match mapping from
// request paths to handler functions. The table is populated before the
// server starts accepting connections and is read-only while serving, so
// lookups need no locking.
package router

import (
	"github.com/kestrel-web/kestrel/pkg/httpwire"
	"github.com/kestrel-web/kestrel/pkg/session"
)

// Handler processes one request and returns the response to serialize.
// Handlers run synchronously on the connection goroutine.
type Handler func(*httpwire.Request, *session.Handle) *httpwire.Response

// Table maps exact path strings to handlers. No prefix, parameter or
// wildcard matching is supported.
type Table struct {
	routes map[string]Handler
}

// New creates an empty route table.
func New() *Table {
	return &Table{routes: make(map[string]Handler)}
}

// Register binds path to handler. Registering the same path again replaces
// the previous handler; last registration wins.
func (t *Table) Register(path string, handler Handler) {
	t.routes[path] = handler
}

// Lookup returns the handler bound to exactly path.
func (t *Table) Lookup(path string) (Handler, bool) {
	handler, ok := t.routes[path]
	return handler, ok
}

// Len returns the number of registered routes.
func (t *Table) Len() int { return len(t.routes) }
