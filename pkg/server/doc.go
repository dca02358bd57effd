// Package server owns the listening socket and the per-connection pipeline:
// accept, parse, dispatch, respond, close.
//
// Every accepted connection is handled to completion by its own goroutine.
// There is no pool and no admission control; an abusive client can open as
// many connections as the OS allows. That ceiling is accepted for this
// design rather than hidden behind a half-measure.
//
// Within one connection, parsing strictly precedes dispatch, which strictly
// precedes the response write. Across connections there is no ordering.
// The route table is read-only while serving; the session store is the only
// shared mutable state and synchronizes itself per operation.
package server
