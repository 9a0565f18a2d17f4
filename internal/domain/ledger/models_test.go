package ledger

import (
	"testing"

	"fastpay/internal/infrastructure/stripe"
)

func TestAccountTitle(t *testing.T) {
	tests := []struct {
		name    string
		account *stripe.Account
		want    string
	}{
		{
			name:    "Business Name Preferred",
			account: &stripe.Account{BusinessProfile: &stripe.BusinessProfile{Name: "Acme"}},
			want:    "Acme",
		},
		{
			name: "Falls Back To Individual Name",
			account: &stripe.Account{
				BusinessProfile: &stripe.BusinessProfile{},
				Individual:      &stripe.Individual{FirstName: "Jane", LastName: "Doe"},
			},
			want: "Jane Doe",
		},
		{
			name:    "First Name Only",
			account: &stripe.Account{Individual: &stripe.Individual{FirstName: "Jane"}},
			want:    "Jane",
		},
		{
			name:    "Sentinel When Nothing Set",
			account: &stripe.Account{},
			want:    "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := accountTitle(tt.account); got != tt.want {
				t.Errorf("accountTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrimaryBankAccount(t *testing.T) {
	account := &stripe.Account{
		ExternalAccounts: stripe.ExternalAccounts{Data: []stripe.ExternalAccount{
			{Object: "card", Last4: "4242"},
			{Object: "bank_account", Last4: "6789", BankName: "TEST BANK"},
			{Object: "bank_account", Last4: "1111"},
		}},
	}

	bank := primaryBankAccount(account)
	if bank == nil {
		t.Fatal("expected a bank account")
	}
	if bank.Last4 != "6789" {
		t.Errorf("last4 = %q, want first bank_account entry 6789", bank.Last4)
	}

	if got := primaryBankAccount(&stripe.Account{}); got != nil {
		t.Errorf("expected nil for account with no external accounts, got %+v", got)
	}
}
