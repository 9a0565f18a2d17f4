package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fastpay/internal/infrastructure/stripe"
)

func TestHandleMainBalance(t *testing.T) {
	provider := &MockProvider{
		RetrieveBalanceFunc: func(ctx context.Context, accountID string) (*stripe.Balance, error) {
			if accountID != "" {
				t.Errorf("expected platform-scoped balance call, got account %q", accountID)
			}
			return &stripe.Balance{
				Available: []stripe.BalanceAmount{{Amount: 123456, Currency: "usd"}},
			}, nil
		},
	}
	handler := NewBalanceHandler(newTestService(&MockLedgerRepo{}, provider))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	handler.HandleMainBalance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp balanceResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Balance.Available) != 1 || resp.Balance.Available[0].Amount != 123456 {
		t.Errorf("unexpected balance payload: %+v", resp.Balance)
	}
}

func TestHandleConnectedBalance(t *testing.T) {
	provider := &MockProvider{
		RetrieveBalanceFunc: func(ctx context.Context, accountID string) (*stripe.Balance, error) {
			return &stripe.Balance{
				Available: []stripe.BalanceAmount{
					{Amount: 9900, Currency: "eur"},
					{Amount: 2500, Currency: "usd"},
				},
				Pending: []stripe.BalanceAmount{{Amount: 100, Currency: "usd"}},
			}, nil
		},
	}
	handler := NewBalanceHandler(newTestService(&MockLedgerRepo{}, provider))

	rec := postJSON(t, handler.HandleConnectedBalance, map[string]string{"connectedAccountId": "acct_1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		AvailableBalance string `json:"availableBalance"`
		PendingBalance   string `json:"pendingBalance"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AvailableBalance != "25.00" {
		t.Errorf("expected available 25.00, got %q", resp.AvailableBalance)
	}
	if resp.PendingBalance != "1.00" {
		t.Errorf("expected pending 1.00, got %q", resp.PendingBalance)
	}
}

func TestHandlePayoutHistory(t *testing.T) {
	provider := &MockProvider{
		ListPayoutsFunc: func(ctx context.Context, accountID string, limit int) (*stripe.PayoutList, error) {
			if limit != 100 {
				t.Errorf("expected limit 100, got %d", limit)
			}
			return &stripe.PayoutList{Data: []stripe.Payout{
				{ID: "po_1", Amount: 1235, Status: "paid", Created: 1700000000},
			}}, nil
		},
	}
	handler := NewBalanceHandler(newTestService(&MockLedgerRepo{}, provider))

	rec := postJSON(t, handler.HandlePayoutHistory, map[string]string{"connectedAccountId": "acct_1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp payoutHistoryResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.PayoutHistory) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp.PayoutHistory))
	}
	record := resp.PayoutHistory[0]
	if record.Amount != "12.35" {
		t.Errorf("expected amount 12.35, got %q", record.Amount)
	}
	if record.ArrivalDate != "N/A" {
		t.Errorf("expected arrival date N/A, got %q", record.ArrivalDate)
	}
}
