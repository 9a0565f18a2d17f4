package stripe

import "context"

// ClientInterface defines the operations required from the payments API client.
// Account-scoped calls (payouts, balance, payout listing) take the connected
// account ID they run against; an empty account ID targets the platform.
type ClientInterface interface {
	CreateAccount(ctx context.Context, email string) (*Account, error)
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*AccountLink, error)
	RetrieveAccount(ctx context.Context, accountID string) (*Account, error)
	CreateTransfer(ctx context.Context, params TransferParams) (*Transfer, error)
	CreatePayout(ctx context.Context, accountID string, amount int64, currency string) (*Payout, error)
	ListPayouts(ctx context.Context, accountID string, limit int) (*PayoutList, error)
	RetrieveBalance(ctx context.Context, accountID string) (*Balance, error)
	CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error)
	ConfirmPaymentIntent(ctx context.Context, paymentIntentID, paymentMethod string) (*PaymentIntent, error)
	CreateCharge(ctx context.Context, params ChargeParams) (*Charge, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
}
