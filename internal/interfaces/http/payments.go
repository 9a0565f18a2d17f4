package http

import (
	"net/http"

	"fastpay/internal/domain/ledger"
	"fastpay/internal/infrastructure/stripe"
	"fastpay/internal/shared/money"
)

// PaymentHandler serves the money-movement endpoints: transfers, payouts and
// the test payment flows.
type PaymentHandler struct {
	service *ledger.Service
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(service *ledger.Service) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// minorAmountRequest carries an amount already expressed in minor units
// (cents), passed through to the provider unconverted.
type minorAmountRequest struct {
	UserID             string `json:"userId"`
	ConnectedAccountID string `json:"connectedAccountId"`
	Amount             int64  `json:"amount"`
}

// majorAmountRequest carries an amount in major units (dollars); the handler
// converts it to minor units exactly once before calling the service.
type majorAmountRequest struct {
	UserID             string   `json:"userId"`
	ConnectedAccountID string   `json:"connectedAccountId"`
	Amount             *float64 `json:"amount"`
}

type paymentIntentRequest struct {
	Amount             int64  `json:"amount"`
	Currency           string `json:"currency"`
	ConnectedAccountID string `json:"connectedAccountId"`
}

type confirmIntentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

type transferResponse struct {
	Message  string           `json:"message"`
	Transfer *stripe.Transfer `json:"transfer"`
}

type payoutResponse struct {
	Message string         `json:"message"`
	Payout  *stripe.Payout `json:"payout"`
}

type chargeResponse struct {
	Message string         `json:"message"`
	Charge  *stripe.Charge `json:"charge"`
}

type paymentIntentResponse struct {
	Message       string                `json:"message,omitempty"`
	PaymentIntent *stripe.PaymentIntent `json:"paymentIntent"`
}

// transferDisplay mirrors the provider transfer with the amount re-expressed
// as a major-unit string.
type transferDisplay struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Destination string `json:"destination"`
	Description string `json:"description"`
	Created     int64  `json:"created"`
}

type payoutDisplay struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Created     int64  `json:"created"`
	ArrivalDate int64  `json:"arrival_date"`
}

type directTransferResponse struct {
	Message  string          `json:"message"`
	Transfer transferDisplay `json:"transfer"`
	Payout   payoutDisplay   `json:"payout"`
}

// HandleTransferToConnectedAccount moves funds from the platform balance to a
// registered connected account. The amount arrives in minor units.
func (h *PaymentHandler) HandleTransferToConnectedAccount(w http.ResponseWriter, r *http.Request) {
	var req minorAmountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	transfer, err := h.service.AuthorizeAndTransfer(r.Context(), req.UserID, req.ConnectedAccountID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, transferResponse{Message: "Payout successful", Transfer: transfer})
}

// HandleTransferToBank pays out from a connected account's balance to its
// linked bank account. The amount arrives in major units.
func (h *PaymentHandler) HandleTransferToBank(w http.ResponseWriter, r *http.Request) {
	var req majorAmountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ConnectedAccountID == "" || req.Amount == nil || *req.Amount <= 0 {
		writeError(w, ledger.ErrInvalidInput)
		return
	}

	payout, err := h.service.PayoutToBank(r.Context(), req.ConnectedAccountID, money.ToMinorUnits(*req.Amount))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payoutResponse{Message: "Payout to bank account successful", Payout: payout})
}

// HandleDirectTransfer runs the combined transfer-then-payout flow. The
// amount arrives in major units and is converted once; both legs use the same
// minor-unit value.
func (h *PaymentHandler) HandleDirectTransfer(w http.ResponseWriter, r *http.Request) {
	var req majorAmountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ConnectedAccountID == "" || req.Amount == nil || *req.Amount <= 0 {
		writeError(w, ledger.ErrInvalidInput)
		return
	}

	outcome, err := h.service.AuthorizeTransferAndPayout(r.Context(), req.UserID, req.ConnectedAccountID, money.ToMinorUnits(*req.Amount))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, directTransferResponse{
		Message: "Payout successful to both connected account and bank account",
		Transfer: transferDisplay{
			ID:          outcome.Transfer.ID,
			Amount:      outcome.TransferAmount,
			Currency:    outcome.Transfer.Currency,
			Destination: outcome.Transfer.Destination,
			Description: outcome.Transfer.Description,
			Created:     outcome.Transfer.Created,
		},
		Payout: payoutDisplay{
			ID:          outcome.Payout.ID,
			Amount:      outcome.PayoutAmount,
			Currency:    outcome.Payout.Currency,
			Status:      outcome.Payout.Status,
			Created:     outcome.Payout.Created,
			ArrivalDate: outcome.Payout.ArrivalDate,
		},
	})
}

// HandleSendToConnectedAccount creates a test-card charge routed to a
// connected account. The amount arrives in minor units.
func (h *PaymentHandler) HandleSendToConnectedAccount(w http.ResponseWriter, r *http.Request) {
	var req minorAmountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	charge, err := h.service.CreateTestCharge(r.Context(), req.ConnectedAccountID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chargeResponse{Message: "Test charge created successfully", Charge: charge})
}

// HandlePaymentIntent creates a payment intent routed to a connected account.
func (h *PaymentHandler) HandlePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	intent, err := h.service.CreateDestinationPaymentIntent(r.Context(), req.Amount, req.Currency, req.ConnectedAccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paymentIntentResponse{PaymentIntent: intent})
}

// HandleSendMoney creates a payment intent to add funds to the platform
// balance.
func (h *PaymentHandler) HandleSendMoney(w http.ResponseWriter, r *http.Request) {
	var req minorAmountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	intent, err := h.service.CreateTestPaymentIntent(r.Context(), req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paymentIntentResponse{
		Message:       "Payment Intent created to add funds",
		PaymentIntent: intent,
	})
}

// HandleCompleteSendMoney confirms a previously created payment intent with
// the test payment method.
func (h *PaymentHandler) HandleCompleteSendMoney(w http.ResponseWriter, r *http.Request) {
	var req confirmIntentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	intent, err := h.service.ConfirmPaymentIntent(r.Context(), req.PaymentIntentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paymentIntentResponse{
		Message:       "Payment completed successfully",
		PaymentIntent: intent,
	})
}
