package http

import (
	"net/http"
	"strconv"

	"fastpay/internal/domain/ledger"
)

// CheckoutHandler serves the hosted checkout flow.
type CheckoutHandler struct {
	service *ledger.Service
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service *ledger.Service) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type msgResponse struct {
	Msg string `json:"msg"`
}

// HandlePriceSet creates a checkout session priced at the path's minor-unit
// amount and redirects the caller to the hosted payment page.
func (h *CheckoutHandler) HandlePriceSet(w http.ResponseWriter, r *http.Request) {
	price, err := strconv.ParseInt(r.PathValue("price"), 10, 64)
	if err != nil || price <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid price"})
		return
	}

	session, err := h.service.CreateCheckoutSession(r.Context(), price)
	if err != nil {
		writeError(w, err)
		return
	}

	http.Redirect(w, r, session.URL, http.StatusSeeOther)
}

// HandleSuccess acknowledges a completed checkout redirect.
func (h *CheckoutHandler) HandleSuccess(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, msgResponse{Msg: "success"})
}

// HandleCancel acknowledges an abandoned checkout redirect.
func (h *CheckoutHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, msgResponse{Msg: "Cancel"})
}

// HandleHealth reports service liveness.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
