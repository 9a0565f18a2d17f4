package ledger

import "context"

// Repository defines the interface for the per-user registration set.
// This interface is defined in the domain layer, but implemented in the
// infrastructure layer. Implementations must apply set mutations atomically:
// concurrent appends and removals for the same user serialize rather than
// losing updates.
type Repository interface {
	// EnsureUser creates the user's record with an empty set when absent.
	EnsureUser(ctx context.Context, userID string) error

	// GetConnectedAccounts returns the user's registration set.
	// Returns ErrUserNotFound when the user's record does not exist.
	GetConnectedAccounts(ctx context.Context, userID string) ([]ConnectedAccount, error)

	// AppendConnectedAccount adds an entry to the user's set, creating the
	// record when absent.
	AppendConnectedAccount(ctx context.Context, userID string, account ConnectedAccount) error

	// RemoveConnectedAccount removes all entries matching the given connected
	// account ID; a no-op when no entry matches.
	// Returns ErrUserNotFound when the user's record does not exist.
	RemoveConnectedAccount(ctx context.Context, userID, connectedAccountID string) error
}
