package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fastpay/internal/domain/ledger"
)

const (
	ledgerCollection = "bankdetail"
	accountsField    = "connectedAccounts"
)

// userDocument is the stored shape of one user's registration set.
type userDocument struct {
	ConnectedAccounts []ledger.ConnectedAccount `firestore:"connectedAccounts"`
}

// LedgerRepository implements ledger.Repository on Firestore, one document
// per user. Set mutations run inside transactions so concurrent appends and
// removals for the same user serialize instead of losing updates.
type LedgerRepository struct {
	client *firestore.Client
}

// Ensure LedgerRepository implements ledger.Repository
var _ ledger.Repository = (*LedgerRepository)(nil)

// NewLedgerRepository creates a new Firestore-backed ledger repository.
func NewLedgerRepository(client *firestore.Client) *LedgerRepository {
	return &LedgerRepository{client: client}
}

// EnsureUser creates the user's document with an empty set when absent.
func (r *LedgerRepository) EnsureUser(ctx context.Context, userID string) error {
	ref := r.doc(userID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if snap != nil && snap.Exists() {
			return nil
		}
		return tx.Set(ref, userDocument{ConnectedAccounts: []ledger.ConnectedAccount{}})
	})
	if err != nil {
		return fmt.Errorf("failed to ensure user document: %w", err)
	}
	return nil
}

// GetConnectedAccounts returns the user's registration set.
func (r *LedgerRepository) GetConnectedAccounts(ctx context.Context, userID string) ([]ledger.ConnectedAccount, error) {
	snap, err := r.doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ledger.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user document: %w", err)
	}

	var doc userDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode user document: %w", err)
	}
	return doc.ConnectedAccounts, nil
}

// AppendConnectedAccount adds an entry to the user's set via array-union,
// creating the document when absent.
func (r *LedgerRepository) AppendConnectedAccount(ctx context.Context, userID string, account ledger.ConnectedAccount) error {
	ref := r.doc(userID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if snap == nil || !snap.Exists() {
			return tx.Set(ref, userDocument{ConnectedAccounts: []ledger.ConnectedAccount{account}})
		}
		return tx.Update(ref, []firestore.Update{
			{Path: accountsField, Value: firestore.ArrayUnion(account)},
		})
	})
	if err != nil {
		return fmt.Errorf("failed to append connected account: %w", err)
	}
	return nil
}

// RemoveConnectedAccount filters out all entries with the given connected
// account ID and writes the remaining set back.
func (r *LedgerRepository) RemoveConnectedAccount(ctx context.Context, userID, connectedAccountID string) error {
	ref := r.doc(userID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ledger.ErrUserNotFound
			}
			return err
		}
		if !snap.Exists() {
			return ledger.ErrUserNotFound
		}

		var doc userDocument
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("failed to decode user document: %w", err)
		}

		remaining := make([]ledger.ConnectedAccount, 0, len(doc.ConnectedAccounts))
		for _, entry := range doc.ConnectedAccounts {
			if entry.ConnectedAccountID != connectedAccountID {
				remaining = append(remaining, entry)
			}
		}

		return tx.Update(ref, []firestore.Update{
			{Path: accountsField, Value: remaining},
		})
	})
	if err != nil {
		if errors.Is(err, ledger.ErrUserNotFound) {
			return ledger.ErrUserNotFound
		}
		return fmt.Errorf("failed to remove connected account: %w", err)
	}
	return nil
}

func (r *LedgerRepository) doc(userID string) *firestore.DocumentRef {
	return r.client.Collection(ledgerCollection).Doc(userID)
}
