// Package session implements the process-wide session store and the
// per-request handles through which handlers read and write session state.
//
// Sessions are keyed by an opaque token carried in a cookie. Tokens are
// random 128-bit identifiers; a predictable counter would invite session
// fixation by guessing. The store guards each operation with a mutex held
// for that single operation only, never across a handler invocation.
//
// Handlers never see the store directly. The dispatcher hands each handler a
// Handle bound to the request's token. A handle for an anonymous request
// mints a store entry lazily on the first write; reads on an anonymous
// handle report absence without creating anything, so a handler that only
// inspects session state never causes a Set-Cookie.
package session
