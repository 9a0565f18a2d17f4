package http

import (
	"net/http"

	"fastpay/internal/domain/ledger"
	"fastpay/internal/infrastructure/stripe"
)

// BalanceHandler serves the balance and payout-history endpoints.
type BalanceHandler struct {
	service *ledger.Service
}

// NewBalanceHandler creates a new balance handler.
func NewBalanceHandler(service *ledger.Service) *BalanceHandler {
	return &BalanceHandler{service: service}
}

type balanceResponse struct {
	Balance *stripe.Balance `json:"balance"`
}

type payoutHistoryResponse struct {
	PayoutHistory []ledger.PayoutRecord `json:"payoutHistory"`
}

// HandleMainBalance returns the platform's provider balance.
func (h *BalanceHandler) HandleMainBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.service.GetMainBalance(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{Balance: balance})
}

// HandleConnectedBalance returns a connected account's usd balance as
// two-decimal major-unit strings.
func (h *BalanceHandler) HandleConnectedBalance(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	balance, err := h.service.GetConnectedBalance(r.Context(), req.ConnectedAccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

// HandlePayoutHistory lists a connected account's recent payouts formatted
// for display.
func (h *BalanceHandler) HandlePayoutHistory(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	records, err := h.service.GetPayoutHistory(r.Context(), req.ConnectedAccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payoutHistoryResponse{PayoutHistory: records})
}
