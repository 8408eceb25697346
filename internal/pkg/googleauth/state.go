package googleauth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// PendingAuthorization is an in-flight handshake: the oauth2 config bound to
// the redirect URI the flow started with.
type PendingAuthorization struct {
	Config    *oauth2.Config
	CreatedAt time.Time
}

// StateStore maps opaque state values to pending handshakes. Entries are
// single-use: Take must remove the entry atomically so two racing callbacks
// on the same state resolve to exactly one winner. Entries live for the
// process lifetime only; a restart invalidates all in-flight authorizations.
type StateStore interface {
	Put(state string, pending PendingAuthorization)
	Take(state string) (PendingAuthorization, bool)
}

type memoryStateStore struct {
	mu      sync.Mutex
	pending map[string]PendingAuthorization
}

// NewMemoryStateStore returns a mutex-protected in-memory state store.
func NewMemoryStateStore() StateStore {
	return &memoryStateStore{pending: make(map[string]PendingAuthorization)}
}

func (s *memoryStateStore) Put(state string, pending PendingAuthorization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[state] = pending
}

func (s *memoryStateStore) Take(state string) (PendingAuthorization, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending, ok := s.pending[state]
	if ok {
		delete(s.pending, state)
	}
	return pending, ok
}

// newState mints a cryptographically unpredictable state value.
func newState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
