package ledger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"fastpay/internal/infrastructure/stripe"
	"fastpay/internal/shared/money"
)

const (
	defaultCurrency = "usd"

	// Hard-coded test instruments for the demo payment endpoints.
	testCardToken     = "tok_visa"
	testPaymentMethod = "pm_card_visa"

	payoutHistoryLimit = 100

	// displayTimeFormat renders provider timestamps as local date/time,
	// e.g. "Jun 5, 02:30 PM".
	displayTimeFormat = "Jan 2, 03:04 PM"
)

// Config holds the service-level settings of the ledger.
type Config struct {
	// PublicBaseURL is the externally reachable base URL used to build
	// onboarding refresh/return links and checkout redirect targets.
	PublicBaseURL string

	// CheckoutCurrency is the currency for hosted checkout sessions.
	CheckoutCurrency string
}

// Service owns the mapping from users to their registered connected accounts
// and gates money movement behind that registration state.
type Service struct {
	repo     Repository
	provider stripe.ClientInterface
	cfg      Config
	logger   *zap.Logger
}

// NewService creates a new ledger service.
func NewService(repo Repository, provider stripe.ClientInterface, cfg Config, logger *zap.Logger) *Service {
	if cfg.CheckoutCurrency == "" {
		cfg.CheckoutCurrency = defaultCurrency
	}
	return &Service{repo: repo, provider: provider, cfg: cfg, logger: logger}
}

// RegisterAccount creates a connected account with the payments provider,
// appends it to the user's registration set (creating the user's record on
// first use) and returns a provider-hosted onboarding link.
//
// When the ledger append fails after the provider account was created, the
// provider account is orphaned; there is no compensating delete. The orphan
// is logged so it can be reconciled manually.
func (s *Service) RegisterAccount(ctx context.Context, userID, email string) (*Registration, error) {
	if err := s.repo.EnsureUser(ctx, userID); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	account, err := s.provider.CreateAccount(ctx, email)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	entry := ConnectedAccount{ConnectedAccountID: account.ID, Email: email}
	if err := s.repo.AppendConnectedAccount(ctx, userID, entry); err != nil {
		s.logger.Error("ledger append failed, provider account orphaned",
			zap.String("userId", userID),
			zap.String("connectedAccountId", account.ID),
			zap.Error(err))
		return nil, &PersistenceError{Err: err}
	}

	link, err := s.provider.CreateAccountLink(ctx, account.ID,
		s.cfg.PublicBaseURL+"/reauth", s.cfg.PublicBaseURL+"/return")
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	return &Registration{AccountID: account.ID, OnboardingURL: link.URL}, nil
}

// ListAccounts returns a display summary for every account in the user's
// registration set. Accounts whose provider lookup fails are logged and
// skipped; the listing itself still succeeds.
func (s *Service) ListAccounts(ctx context.Context, userID string) ([]AccountSummary, error) {
	accounts, err := s.getRegisteredSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]AccountSummary, 0, len(accounts))
	for _, entry := range accounts {
		detail, err := s.provider.RetrieveAccount(ctx, entry.ConnectedAccountID)
		if err != nil {
			s.logger.Warn("skipping connected account, provider lookup failed",
				zap.String("connectedAccountId", entry.ConnectedAccountID),
				zap.Error(err))
			continue
		}

		summary := AccountSummary{
			AccountTitle: accountTitle(detail),
			AccountID:    detail.ID,
		}
		if bank := primaryBankAccount(detail); bank != nil {
			summary.BankAccountNumber = bank.Last4
			summary.RoutingNumber = bank.RoutingNumber
			summary.BankName = bank.BankName
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// GetAccountDetail returns the full provider metadata of a connected account.
// Intentionally not gated by registration state: any caller may query any ID.
func (s *Service) GetAccountDetail(ctx context.Context, connectedAccountID string) (*AccountDetail, error) {
	account, err := s.provider.RetrieveAccount(ctx, connectedAccountID)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	detail := &AccountDetail{
		AccountID:        account.ID,
		Email:            account.Email,
		BusinessType:     account.BusinessType,
		Country:          account.Country,
		Created:          account.Created,
		Capabilities:     account.Capabilities,
		DetailsSubmitted: account.DetailsSubmitted,
		PayoutsEnabled:   account.PayoutsEnabled,
	}
	if bank := primaryBankAccount(account); bank != nil {
		detail.BankDetail = BankDetail{
			BankAccountNumber: bank.Last4,
			RoutingNumber:     bank.RoutingNumber,
			BankName:          bank.BankName,
		}
	}
	return detail, nil
}

// GetAccountCapabilities returns enablement flags and outstanding
// requirements/restrictions. Not gated by registration state.
func (s *Service) GetAccountCapabilities(ctx context.Context, connectedAccountID string) (*AccountCapabilities, error) {
	account, err := s.provider.RetrieveAccount(ctx, connectedAccountID)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return &AccountCapabilities{
		AccountID:      account.ID,
		BusinessType:   account.BusinessType,
		ChargesEnabled: account.ChargesEnabled,
		PayoutsEnabled: account.PayoutsEnabled,
		Requirements:   account.Requirements,
		Restrictions:   account.Restrictions,
	}, nil
}

// DeregisterAccount removes the matching entry from the user's registration
// set; a no-op when the account was never registered.
func (s *Service) DeregisterAccount(ctx context.Context, userID, connectedAccountID string) error {
	err := s.repo.RemoveConnectedAccount(ctx, userID, connectedAccountID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return &PersistenceError{Err: err}
	}
	return nil
}

// AuthorizeAndTransfer checks that the connected account is in the user's
// registration set, then transfers amount (minor units) from the platform
// balance to the account's provider-side balance. Funds do not reach the
// external bank.
func (s *Service) AuthorizeAndTransfer(ctx context.Context, userID, connectedAccountID string, amount int64) (*stripe.Transfer, error) {
	if err := s.authorize(ctx, userID, connectedAccountID); err != nil {
		return nil, err
	}

	transfer, err := s.provider.CreateTransfer(ctx, stripe.TransferParams{
		Amount:      amount,
		Currency:    defaultCurrency,
		Destination: connectedAccountID,
		Description: "Payout to user's bank account",
	})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return transfer, nil
}

// PayoutToBank pays out amount (minor units) from the connected account's
// provider-side balance to its linked bank account. No registration check:
// the account already holds the funds being paid out.
func (s *Service) PayoutToBank(ctx context.Context, connectedAccountID string, amount int64) (*stripe.Payout, error) {
	if connectedAccountID == "" || amount <= 0 {
		return nil, ErrInvalidInput
	}

	payout, err := s.provider.CreatePayout(ctx, connectedAccountID, amount, defaultCurrency)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return payout, nil
}

// AuthorizeTransferAndPayout runs the two-step flow: registration check,
// transfer to the connected account, then payout to its bank. The payout is
// not attempted when the transfer fails. The same minor-unit amount is used
// for both legs; outcomes carry the amounts re-expressed in major units.
func (s *Service) AuthorizeTransferAndPayout(ctx context.Context, userID, connectedAccountID string, amount int64) (*TransferAndPayout, error) {
	if connectedAccountID == "" || amount <= 0 {
		return nil, ErrInvalidInput
	}
	if err := s.authorize(ctx, userID, connectedAccountID); err != nil {
		return nil, err
	}

	transfer, err := s.provider.CreateTransfer(ctx, stripe.TransferParams{
		Amount:      amount,
		Currency:    defaultCurrency,
		Destination: connectedAccountID,
		Description: "Transfer to connected account",
	})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	payout, err := s.provider.CreatePayout(ctx, connectedAccountID, amount, defaultCurrency)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	return &TransferAndPayout{
		Transfer:       transfer,
		Payout:         payout,
		TransferAmount: money.FormatMinorUnits(transfer.Amount),
		PayoutAmount:   money.FormatMinorUnits(payout.Amount),
	}, nil
}

// GetMainBalance returns the platform's balance as reported by the provider.
func (s *Service) GetMainBalance(ctx context.Context) (*stripe.Balance, error) {
	balance, err := s.provider.RetrieveBalance(ctx, "")
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return balance, nil
}

// GetConnectedBalance returns a connected account's usd balance, zero when no
// usd entry exists, formatted as fixed two-decimal major-unit strings.
func (s *Service) GetConnectedBalance(ctx context.Context, connectedAccountID string) (*ConnectedBalance, error) {
	balance, err := s.provider.RetrieveBalance(ctx, connectedAccountID)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return &ConnectedBalance{
		AvailableBalance: money.FormatMinorUnits(currencyAmount(balance.Available, defaultCurrency)),
		PendingBalance:   money.FormatMinorUnits(currencyAmount(balance.Pending, defaultCurrency)),
	}, nil
}

// GetPayoutHistory lists up to 100 most recent payouts of a connected
// account, formatted for display.
func (s *Service) GetPayoutHistory(ctx context.Context, connectedAccountID string) ([]PayoutRecord, error) {
	list, err := s.provider.ListPayouts(ctx, connectedAccountID, payoutHistoryLimit)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	records := make([]PayoutRecord, 0, len(list.Data))
	for _, payout := range list.Data {
		record := PayoutRecord{
			Amount:      money.FormatMinorUnits(payout.Amount),
			Created:     formatTimestamp(payout.Created),
			Status:      payout.Status,
			ArrivalDate: missingTitle,
		}
		if payout.ArrivalDate != 0 {
			record.ArrivalDate = formatTimestamp(payout.ArrivalDate)
		}
		records = append(records, record)
	}
	return records, nil
}

// CreateTestCharge creates a charge against the hard-coded test card,
// routed to the connected account.
func (s *Service) CreateTestCharge(ctx context.Context, connectedAccountID string, amount int64) (*stripe.Charge, error) {
	charge, err := s.provider.CreateCharge(ctx, stripe.ChargeParams{
		Amount:      amount,
		Currency:    defaultCurrency,
		Source:      testCardToken,
		Destination: connectedAccountID,
	})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return charge, nil
}

// CreateTestPaymentIntent creates a card payment intent to add funds to the
// platform balance.
func (s *Service) CreateTestPaymentIntent(ctx context.Context, amount int64) (*stripe.PaymentIntent, error) {
	intent, err := s.provider.CreatePaymentIntent(ctx, stripe.PaymentIntentParams{
		Amount:   amount,
		Currency: defaultCurrency,
	})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return intent, nil
}

// CreateDestinationPaymentIntent creates a card payment intent routed to a
// connected account. Currency defaults to usd when empty.
func (s *Service) CreateDestinationPaymentIntent(ctx context.Context, amount int64, currency, connectedAccountID string) (*stripe.PaymentIntent, error) {
	if currency == "" {
		currency = defaultCurrency
	}
	intent, err := s.provider.CreatePaymentIntent(ctx, stripe.PaymentIntentParams{
		Amount:      amount,
		Currency:    currency,
		Destination: connectedAccountID,
	})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return intent, nil
}

// ConfirmPaymentIntent confirms a payment intent with the hard-coded test
// payment method.
func (s *Service) ConfirmPaymentIntent(ctx context.Context, paymentIntentID string) (*stripe.PaymentIntent, error) {
	intent, err := s.provider.ConfirmPaymentIntent(ctx, paymentIntentID, testPaymentMethod)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return intent, nil
}

// CreateCheckoutSession creates a hosted checkout session for a custom
// service priced at the given minor-unit amount.
func (s *Service) CreateCheckoutSession(ctx context.Context, amount int64) (*stripe.CheckoutSession, error) {
	session, err := s.provider.CreateCheckoutSession(ctx, stripe.CheckoutSessionParams{
		Amount:      amount,
		Currency:    s.cfg.CheckoutCurrency,
		ProductName: "Custom Services",
		SuccessURL:  s.cfg.PublicBaseURL + "/success",
		CancelURL:   s.cfg.PublicBaseURL + "/cancel",
	})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return session, nil
}

// authorize verifies that the connected account is in the user's
// registration set at this moment.
func (s *Service) authorize(ctx context.Context, userID, connectedAccountID string) error {
	accounts, err := s.getRegisteredSet(ctx, userID)
	if err != nil {
		return err
	}
	for _, entry := range accounts {
		if entry.ConnectedAccountID == connectedAccountID {
			return nil
		}
	}
	return ErrAccountNotRegistered
}

func (s *Service) getRegisteredSet(ctx context.Context, userID string) ([]ConnectedAccount, error) {
	accounts, err := s.repo.GetConnectedAccounts(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, &PersistenceError{Err: err}
	}
	return accounts, nil
}

func currencyAmount(amounts []stripe.BalanceAmount, currency string) int64 {
	for _, entry := range amounts {
		if entry.Currency == currency {
			return entry.Amount
		}
	}
	return 0
}

func formatTimestamp(ts int64) string {
	return time.Unix(ts, 0).Format(displayTimeFormat)
}
