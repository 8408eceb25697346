package googleauth

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no usable Google credential exists for the
	// caller. The only remediation is to run the authorization flow.
	ErrUnauthenticated = errors.New("no google credential for this caller")

	// ErrUnknownState means a callback carried a state value that was never
	// issued or was already consumed. Terminal, not retried.
	ErrUnknownState = errors.New("unknown or already consumed authorization state")

	// ErrInvalidRecord means a persisted token record is missing required
	// fields. Treated like ErrUnauthenticated by callers.
	ErrInvalidRecord = errors.New("token record is missing required fields")

	// ErrMissingRefreshToken means the provider completed the exchange but
	// did not return a refresh token, so the credential cannot outlive the
	// access token.
	ErrMissingRefreshToken = errors.New("provider did not return a refresh token")
)

// ProviderError wraps a failure reported by the identity provider, e.g. an
// expired or replayed authorization code. Codes are single-use, so these are
// never retried.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("google oauth %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a storage failure while reading or writing token
// records. The request as a whole may be retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("token store %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
