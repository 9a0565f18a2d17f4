package ledger

import "errors"

// Domain errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrAccountNotRegistered = errors.New("invalid connected account ID")
	ErrInvalidInput         = errors.New("invalid connectedAccountId or amount")
)

// ProviderError wraps a failed payments provider call. The upstream message
// is surfaced verbatim to callers.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return e.Err.Error() }
func (e *ProviderError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed document store call.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }
