package googleauth

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/Jacobisaldana/nativoseo-app/app/repository"
)

// Resolver answers "the caller's credential" for a request. Authenticated
// callers are resolved through the token store; the manual slot serves the
// single-user/test mode where no app login exists. The resolver only reads
// and rehydrates, it never mints credentials.
type Resolver struct {
	tokens repository.OAuthTokenRepository

	mu     sync.RWMutex
	manual *Credential
}

// NewResolver creates a resolver over the given token repository.
func NewResolver(tokens repository.OAuthTokenRepository) *Resolver {
	return &Resolver{tokens: tokens}
}

// Resolve returns the credential for the given user, or the manual slot when
// userID is zero (anonymous caller).
func (r *Resolver) Resolve(userID uint) (*Credential, error) {
	if userID == 0 {
		return r.ResolveManual()
	}
	return r.ResolveUser(userID)
}

// ResolveUser fetches and rehydrates the stored credential of a user.
func (r *Resolver) ResolveUser(userID uint) (*Credential, error) {
	record, err := r.tokens.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get", Err: err}
	}
	return FromRecord(record)
}

// SetManual populates the single-user credential slot.
func (r *Resolver) SetManual(cred *Credential) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.manual = cred
}

// ResolveManual returns the manual slot credential, or ErrUnauthenticated if
// it was never populated.
func (r *Resolver) ResolveManual() (*Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.manual == nil {
		return nil, ErrUnauthenticated
	}
	return r.manual, nil
}
