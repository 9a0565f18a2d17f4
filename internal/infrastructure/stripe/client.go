package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	baseURL        = "https://api.stripe.com/v1"
	defaultTimeout = 80 * time.Second

	accountsPath       = "/accounts"
	accountLinksPath   = "/account_links"
	transfersPath      = "/transfers"
	payoutsPath        = "/payouts"
	balancePath        = "/balance"
	paymentIntentsPath = "/payment_intents"
	chargesPath        = "/charges"
	checkoutPath       = "/checkout/sessions"

	// accountHeader scopes a request to a connected account.
	accountHeader = "Stripe-Account"
)

// Client handles communication with the payments provider API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// NewClient creates a new payments API client authenticated with the given
// secret key.
func NewClient(secretKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL:   baseURL,
		secretKey: secretKey,
	}
}

// CreateAccount creates a new express connected account for the given email.
// Card payments and transfers capabilities are requested so the account can
// receive transfers and pay out once onboarding completes.
func (c *Client) CreateAccount(ctx context.Context, email string) (*Account, error) {
	form := url.Values{}
	form.Set("type", "express")
	form.Set("country", "US")
	form.Set("email", email)
	form.Set("capabilities[card_payments][requested]", "true")
	form.Set("capabilities[transfers][requested]", "true")

	var account Account
	if err := c.post(ctx, accountsPath, "", form, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateAccountLink creates a provider-hosted onboarding link for an account.
func (c *Client) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*AccountLink, error) {
	form := url.Values{}
	form.Set("account", accountID)
	form.Set("refresh_url", refreshURL)
	form.Set("return_url", returnURL)
	form.Set("type", "account_onboarding")

	var link AccountLink
	if err := c.post(ctx, accountLinksPath, "", form, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// RetrieveAccount fetches the full metadata of a connected account, including
// its attached external accounts.
func (c *Client) RetrieveAccount(ctx context.Context, accountID string) (*Account, error) {
	var account Account
	if err := c.get(ctx, accountsPath+"/"+url.PathEscape(accountID), "", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateTransfer moves funds from the platform balance to a connected account.
func (c *Client) CreateTransfer(ctx context.Context, params TransferParams) (*Transfer, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.Amount, 10))
	form.Set("currency", params.Currency)
	form.Set("destination", params.Destination)
	if params.Description != "" {
		form.Set("description", params.Description)
	}

	var transfer Transfer
	if err := c.post(ctx, transfersPath, "", form, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// CreatePayout moves funds from the connected account's provider-side balance
// to its linked bank account.
func (c *Client) CreatePayout(ctx context.Context, accountID string, amount int64, currency string) (*Payout, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)

	var payout Payout
	if err := c.post(ctx, payoutsPath, accountID, form, &payout); err != nil {
		return nil, err
	}
	return &payout, nil
}

// ListPayouts returns the most recent payouts of a connected account, newest
// first.
func (c *Client) ListPayouts(ctx context.Context, accountID string, limit int) (*PayoutList, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var list PayoutList
	if err := c.get(ctx, payoutsPath, accountID, query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// RetrieveBalance fetches the balance of the platform, or of a connected
// account when accountID is non-empty.
func (c *Client) RetrieveBalance(ctx context.Context, accountID string) (*Balance, error) {
	var balance Balance
	if err := c.get(ctx, balancePath, accountID, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// CreatePaymentIntent creates a card payment intent, optionally routed to a
// connected account.
func (c *Client) CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.Amount, 10))
	form.Set("currency", params.Currency)
	form.Set("payment_method_types[]", "card")
	if params.Destination != "" {
		form.Set("transfer_data[destination]", params.Destination)
	}

	var intent PaymentIntent
	if err := c.post(ctx, paymentIntentsPath, "", form, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// ConfirmPaymentIntent confirms a payment intent with the given payment method.
func (c *Client) ConfirmPaymentIntent(ctx context.Context, paymentIntentID, paymentMethod string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("payment_method", paymentMethod)

	path := paymentIntentsPath + "/" + url.PathEscape(paymentIntentID) + "/confirm"
	var intent PaymentIntent
	if err := c.post(ctx, path, "", form, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// CreateCharge creates a direct charge, optionally routed to a connected
// account.
func (c *Client) CreateCharge(ctx context.Context, params ChargeParams) (*Charge, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.Amount, 10))
	form.Set("currency", params.Currency)
	form.Set("source", params.Source)
	if params.Destination != "" {
		form.Set("transfer_data[destination]", params.Destination)
	}

	var charge Charge
	if err := c.post(ctx, chargesPath, "", form, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

// CreateCheckoutSession creates a hosted checkout session for a single line
// item.
func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[]", "card")
	form.Set("line_items[0][price_data][currency]", params.Currency)
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.Amount, 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)

	var session CheckoutSession
	if err := c.post(ctx, checkoutPath, "", form, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// post issues a form-encoded POST request. accountID, when non-empty, scopes
// the request to that connected account.
func (c *Client) post(ctx context.Context, path, accountID string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, accountID, out)
}

// get issues a GET request with optional query parameters.
func (c *Client) get(ctx context.Context, path, accountID string, query url.Values, out interface{}) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, accountID, out)
}

func (c *Client) do(req *http.Request, accountID string, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if accountID != "" {
		req.Header.Set(accountHeader, accountID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("payments API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read payments API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
			return errResp.Error
		}
		return &APIError{Message: fmt.Sprintf("payments API returned status %d", resp.StatusCode)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode payments API response: %w", err)
	}
	return nil
}
