package stripe

import "encoding/json"

// Account represents a connected account as returned by the payments API.
type Account struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	BusinessType     string            `json:"business_type"`
	Country          string            `json:"country"`
	Created          int64             `json:"created"`
	ChargesEnabled   bool              `json:"charges_enabled"`
	PayoutsEnabled   bool              `json:"payouts_enabled"`
	DetailsSubmitted bool              `json:"details_submitted"`
	Capabilities     map[string]string `json:"capabilities"`
	Requirements     json.RawMessage   `json:"requirements"`
	Restrictions     json.RawMessage   `json:"restrictions"`
	BusinessProfile  *BusinessProfile  `json:"business_profile"`
	Individual       *Individual       `json:"individual"`
	ExternalAccounts ExternalAccounts  `json:"external_accounts"`
}

// BusinessProfile holds the business-facing profile of an account.
type BusinessProfile struct {
	Name string `json:"name"`
}

// Individual holds the personal details of an individual account holder.
type Individual struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ExternalAccounts is the list of bank accounts and cards attached to a
// connected account.
type ExternalAccounts struct {
	Data []ExternalAccount `json:"data"`
}

// ExternalAccount is a single attached payment destination. Object is
// "bank_account" or "card".
type ExternalAccount struct {
	Object        string `json:"object"`
	Last4         string `json:"last4"`
	RoutingNumber string `json:"routing_number"`
	BankName      string `json:"bank_name"`
}

// AccountLink is a provider-hosted onboarding link.
type AccountLink struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// Transfer is a movement of funds from the platform balance to a connected
// account.
type Transfer struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Destination string `json:"destination"`
	Description string `json:"description"`
	Created     int64  `json:"created"`
}

// Payout is a movement of funds from a provider-side balance to the linked
// bank account.
type Payout struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Created     int64  `json:"created"`
	ArrivalDate int64  `json:"arrival_date"`
}

// PayoutList is a page of payouts.
type PayoutList struct {
	Data    []Payout `json:"data"`
	HasMore bool     `json:"has_more"`
}

// BalanceAmount is a single currency entry within a balance.
type BalanceAmount struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Balance holds the available and pending funds of an account.
type Balance struct {
	Available []BalanceAmount `json:"available"`
	Pending   []BalanceAmount `json:"pending"`
}

// PaymentIntent tracks a payment through its lifecycle.
type PaymentIntent struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret"`
}

// Charge is a direct card charge.
type Charge struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Paid     bool   `json:"paid"`
}

// CheckoutSession is a provider-hosted checkout page.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// TransferParams are the inputs for CreateTransfer. Amount is in minor units.
type TransferParams struct {
	Amount      int64
	Currency    string
	Destination string
	Description string
}

// PaymentIntentParams are the inputs for CreatePaymentIntent. Destination is
// optional; when set the payment is routed to that connected account.
type PaymentIntentParams struct {
	Amount      int64
	Currency    string
	Destination string
}

// ChargeParams are the inputs for CreateCharge.
type ChargeParams struct {
	Amount      int64
	Currency    string
	Source      string
	Destination string
}

// CheckoutSessionParams are the inputs for CreateCheckoutSession. Amount is
// in minor units.
type CheckoutSessionParams struct {
	Amount      int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
}

// APIError is the error payload returned by the payments API. Message is the
// human-readable upstream message surfaced to callers.
type APIError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "payments API error"
}

type errorResponse struct {
	Error *APIError `json:"error"`
}
