package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastpay/internal/domain/ledger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto the HTTP taxonomy: validation failures
// and unregistered accounts get 400, a missing user record 404, and external
// call failures 500 with the upstream message surfaced verbatim.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "User not found"})
	case errors.Is(err, ledger.ErrAccountNotRegistered):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid connected account ID"})
	case errors.Is(err, ledger.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid connectedAccountId or amount"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}
