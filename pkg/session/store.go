package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// Store is an in-memory session table mapping tokens to key/value state.
// It is safe for concurrent use; each operation takes the lock for itself
// only. Sessions live for the lifetime of the process (no expiry, no
// persistence across restarts).
type Store struct {
	mu       sync.RWMutex
	sessions map[string]map[string]any
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]map[string]any)}
}

// Create mints a new session with a fresh token and returns the token.
func (s *Store) Create() string {
	token := generateToken()
	s.mu.Lock()
	s.sessions[token] = make(map[string]any)
	s.mu.Unlock()
	return token
}

// Contains reports whether a token maps to a live session.
func (s *Store) Contains(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[token]
	return ok
}

// Get returns the value stored under key for the given token. The second
// return is false when the token or the key is absent; a missing key is
// not an error, callers supply their own default.
func (s *Store) Get(token, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	value, ok := data[key]
	return value, ok
}

// Set stores value under key for the given token, overwriting any previous
// value (upsert). An unknown token gets a session entry implicitly.
func (s *Store) Set(token, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.sessions[token]
	if !ok {
		data = make(map[string]any)
		s.sessions[token] = data
	}
	data[key] = value
}

// Delete removes a session. Deleting an unknown token is a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Count returns the number of live sessions, for monitoring and tests.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// generateToken returns a cryptographically random 128-bit token.
func generateToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// SECURITY: fatal on entropy failure - guessable tokens are dangerous
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return hex.EncodeToString(b)
}
