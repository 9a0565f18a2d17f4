package http

import (
	"net/http"

	"fastpay/internal/domain/ledger"
)

// AccountHandler serves the connected-account registration endpoints.
type AccountHandler struct {
	service *ledger.Service
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(service *ledger.Service) *AccountHandler {
	return &AccountHandler{service: service}
}

type createAccountRequest struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

type userRequest struct {
	UserID string `json:"userId"`
}

type accountRequest struct {
	ConnectedAccountID string `json:"connectedAccountId"`
}

type deleteAccountRequest struct {
	UserID             string `json:"userId"`
	ConnectedAccountID string `json:"connectedAccountId"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// HandleCreateAccount registers a new connected account for the user and
// returns the provider-hosted onboarding link.
func (h *AccountHandler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email and userId are required"})
		return
	}

	registration, err := h.service.RegisterAccount(r.Context(), req.UserID, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, registration)
}

// HandleListAccounts returns the display summaries of every account in the
// user's registration set.
func (h *AccountHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	summaries, err := h.service.ListAccounts(r.Context(), req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"bankDetails": summaries})
}

// HandleAccountDetail returns the full provider metadata of one connected
// account. The account ID arrives in the request body even though the route
// is a GET; kept for client compatibility.
func (h *AccountHandler) HandleAccountDetail(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	detail, err := h.service.GetAccountDetail(r.Context(), req.ConnectedAccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// HandleAccountStatus reports capability flags and outstanding onboarding
// requirements of a connected account.
func (h *AccountHandler) HandleAccountStatus(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	capabilities, err := h.service.GetAccountCapabilities(r.Context(), req.ConnectedAccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, capabilities)
}

// HandleDeleteAccount removes a connected account from the user's
// registration set.
func (h *AccountHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req deleteAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.DeregisterAccount(r.Context(), req.UserID, req.ConnectedAccountID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Connected account deleted successfully"})
}
