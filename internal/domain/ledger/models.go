package ledger

import (
	"encoding/json"
	"strings"

	"fastpay/internal/infrastructure/stripe"
)

// ConnectedAccount is one entry in a user's registration set: a connected
// account the user may receive transfers on.
type ConnectedAccount struct {
	ConnectedAccountID string `json:"connectedAccountId" firestore:"connectedAccountId"`
	Email              string `json:"email" firestore:"email"`
}

// Registration is the outcome of registering a new connected account.
type Registration struct {
	AccountID     string `json:"accountId"`
	OnboardingURL string `json:"onboardingUrl"`
}

// AccountSummary is the display form of a registered account. Bank fields are
// empty when no bank account is attached yet.
type AccountSummary struct {
	AccountTitle      string `json:"accountTitle"`
	AccountID         string `json:"accountId"`
	BankAccountNumber string `json:"bankAccountNumber"`
	RoutingNumber     string `json:"routingNumber"`
	BankName          string `json:"bankName"`
}

// BankDetail is the primary bank account attached to a connected account.
type BankDetail struct {
	BankAccountNumber string `json:"bankAccountNumber"`
	RoutingNumber     string `json:"routingNumber"`
	BankName          string `json:"bankName"`
}

// AccountDetail is the full provider metadata of a connected account.
type AccountDetail struct {
	AccountID        string            `json:"accountId"`
	Email            string            `json:"email"`
	BusinessType     string            `json:"businessType"`
	Country          string            `json:"country"`
	Created          int64             `json:"created"`
	Capabilities     map[string]string `json:"capabilities"`
	BankDetail       BankDetail        `json:"bankDetail"`
	DetailsSubmitted bool              `json:"detailsSubmitted"`
	PayoutsEnabled   bool              `json:"payoutsEnabled"`
}

// AccountCapabilities reports enablement flags and outstanding requirements
// of a connected account.
type AccountCapabilities struct {
	AccountID      string          `json:"accountId"`
	BusinessType   string          `json:"businessType"`
	ChargesEnabled bool            `json:"chargesEnabled"`
	PayoutsEnabled bool            `json:"payoutsEnabled"`
	Requirements   json.RawMessage `json:"requirements"`
	Restrictions   json.RawMessage `json:"restrictions"`
}

// ConnectedBalance is a connected account's usd balance as fixed two-decimal
// major-unit strings.
type ConnectedBalance struct {
	AvailableBalance string `json:"availableBalance"`
	PendingBalance   string `json:"pendingBalance"`
}

// PayoutRecord is one entry of a connected account's payout history, with
// timestamps formatted for display and the amount in major units.
type PayoutRecord struct {
	Amount      string `json:"amount"`
	Created     string `json:"created"`
	Status      string `json:"status"`
	ArrivalDate string `json:"arrivalDate"`
}

// TransferAndPayout is the combined outcome of the two-step transfer+payout
// flow. TransferAmount and PayoutAmount are the leg amounts re-expressed in
// major units for display.
type TransferAndPayout struct {
	Transfer       *stripe.Transfer `json:"transfer"`
	Payout         *stripe.Payout   `json:"payout"`
	TransferAmount string           `json:"transferAmount"`
	PayoutAmount   string           `json:"payoutAmount"`
}

// missingTitle is the sentinel used when an account exposes neither a
// business name nor an individual name.
const missingTitle = "N/A"

// accountTitle picks a best-effort display name for an account: business
// name, else the individual's full name, else "N/A".
func accountTitle(account *stripe.Account) string {
	if account.BusinessProfile != nil && account.BusinessProfile.Name != "" {
		return account.BusinessProfile.Name
	}
	if account.Individual != nil {
		name := strings.TrimSpace(account.Individual.FirstName + " " + account.Individual.LastName)
		if name != "" {
			return name
		}
	}
	return missingTitle
}

// primaryBankAccount returns the first attached bank account, or nil when the
// account has no bank account yet.
func primaryBankAccount(account *stripe.Account) *stripe.ExternalAccount {
	for i := range account.ExternalAccounts.Data {
		if account.ExternalAccounts.Data[i].Object == "bank_account" {
			return &account.ExternalAccounts.Data[i]
		}
	}
	return nil
}
