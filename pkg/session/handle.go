package session

// Handle is the capability a handler receives for its request's session.
// It is bound to at most one token and is only ever used by the single
// goroutine running the handler.
type Handle struct {
	store *Store
	token string
	fresh bool
}

// NewHandle binds a handle to an existing session token, or to no session
// when token is empty (an anonymous request).
func NewHandle(store *Store, token string) *Handle {
	return &Handle{store: store, token: token}
}

// Get reads a session value. On an anonymous handle it reports absence
// without minting a session.
func (h *Handle) Get(key string) (any, bool) {
	if h.token == "" {
		return nil, false
	}
	return h.store.Get(h.token, key)
}

// GetString reads a session value and type-asserts it to string.
func (h *Handle) GetString(key string) (string, bool) {
	value, ok := h.Get(key)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// Set writes a session value. The first write on an anonymous handle mints
// a new session; the dispatcher observes that via Fresh and emits the
// Set-Cookie header.
func (h *Handle) Set(key string, value any) {
	if h.token == "" {
		h.token = h.store.Create()
		h.fresh = true
	}
	h.store.Set(h.token, key, value)
}

// Token returns the bound session token, or "" when no session exists.
func (h *Handle) Token() string { return h.token }

// Fresh reports whether this handle minted its session during the current
// request.
func (h *Handle) Fresh() bool { return h.fresh }
