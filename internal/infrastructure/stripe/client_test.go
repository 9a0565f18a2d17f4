package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("sk_test_123")
	client.baseURL = server.URL
	return client, server
}

func TestCreateAccount(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/accounts" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_123" {
			t.Errorf("Authorization header = %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if got := r.PostForm.Get("type"); got != "express" {
			t.Errorf("type = %q, want express", got)
		}
		if got := r.PostForm.Get("email"); got != "a@x.com" {
			t.Errorf("email = %q, want a@x.com", got)
		}
		if got := r.PostForm.Get("capabilities[transfers][requested]"); got != "true" {
			t.Errorf("transfers capability = %q, want true", got)
		}
		w.Write([]byte(`{"id": "acct_1", "email": "a@x.com"}`))
	})
	defer server.Close()

	account, err := client.CreateAccount(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}
	if account.ID != "acct_1" {
		t.Errorf("account ID = %q, want acct_1", account.ID)
	}
}

func TestCreatePayoutScopesRequestToAccount(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Stripe-Account"); got != "acct_1" {
			t.Errorf("Stripe-Account header = %q, want acct_1", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if got := r.PostForm.Get("amount"); got != "1235" {
			t.Errorf("amount = %q, want 1235", got)
		}
		if got := r.PostForm.Get("currency"); got != "usd" {
			t.Errorf("currency = %q, want usd", got)
		}
		w.Write([]byte(`{"id": "po_1", "amount": 1235, "currency": "usd", "status": "pending"}`))
	})
	defer server.Close()

	payout, err := client.CreatePayout(context.Background(), "acct_1", 1235, "usd")
	if err != nil {
		t.Fatalf("CreatePayout returned error: %v", err)
	}
	if payout.Amount != 1235 {
		t.Errorf("payout amount = %d, want 1235", payout.Amount)
	}
}

func TestListPayoutsSetsLimit(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "100" {
			t.Errorf("limit = %q, want 100", got)
		}
		w.Write([]byte(`{"data": [{"id": "po_1", "amount": 500}], "has_more": false}`))
	})
	defer server.Close()

	list, err := client.ListPayouts(context.Background(), "acct_1", 100)
	if err != nil {
		t.Fatalf("ListPayouts returned error: %v", err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("got %d payouts, want 1", len(list.Data))
	}
}

func TestRetrieveBalancePlatformScope(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Stripe-Account"]; ok {
			t.Error("Stripe-Account header should not be set for platform balance")
		}
		w.Write([]byte(`{"available": [{"amount": 1000, "currency": "usd"}], "pending": []}`))
	})
	defer server.Close()

	balance, err := client.RetrieveBalance(context.Background(), "")
	if err != nil {
		t.Fatalf("RetrieveBalance returned error: %v", err)
	}
	if len(balance.Available) != 1 || balance.Available[0].Amount != 1000 {
		t.Errorf("unexpected balance: %+v", balance)
	}
}

func TestAPIErrorSurfacesUpstreamMessage(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "No such destination: acct_nope"}}`))
	})
	defer server.Close()

	_, err := client.CreateTransfer(context.Background(), TransferParams{
		Amount:      500,
		Currency:    "usd",
		Destination: "acct_nope",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "No such destination: acct_nope" {
		t.Errorf("message = %q", apiErr.Message)
	}
}
