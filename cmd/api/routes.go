package main

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	httphandlers "fastpay/internal/interfaces/http"
	"fastpay/internal/shared/config"
	"fastpay/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with
// middleware applied.
func SetupRoutes(deps *Dependencies, cfg *config.Config, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	base := strings.TrimSuffix(cfg.Server.BasePath, "/")

	// Health check
	mux.HandleFunc("GET /health", httphandlers.HandleHealth)

	// Connected account registration
	mux.HandleFunc("POST "+base+"/create_account", deps.AccountHandler.HandleCreateAccount)
	mux.HandleFunc("POST "+base+"/show_connected_accounts", deps.AccountHandler.HandleListAccounts)
	mux.HandleFunc("GET "+base+"/details_connected_account", deps.AccountHandler.HandleAccountDetail)
	mux.HandleFunc("POST "+base+"/check_account_status", deps.AccountHandler.HandleAccountStatus)
	mux.HandleFunc("DELETE "+base+"/delete", deps.AccountHandler.HandleDeleteAccount)

	// Transfers and payouts
	mux.HandleFunc("POST "+base+"/transfer_to_connected_account", deps.PaymentHandler.HandleTransferToConnectedAccount)
	mux.HandleFunc("POST "+base+"/transfer_money_to_bank", deps.PaymentHandler.HandleTransferToBank)
	mux.HandleFunc("POST "+base+"/direct_transfer", deps.PaymentHandler.HandleDirectTransfer)
	mux.HandleFunc("POST "+base+"/send_money_to_connected_account", deps.PaymentHandler.HandleSendToConnectedAccount)
	mux.HandleFunc("POST "+base+"/payment_intent", deps.PaymentHandler.HandlePaymentIntent)
	mux.HandleFunc("POST "+base+"/send_money", deps.PaymentHandler.HandleSendMoney)
	mux.HandleFunc("POST "+base+"/completesend_money", deps.PaymentHandler.HandleCompleteSendMoney)

	// Balances and history
	mux.HandleFunc("POST "+base+"/check_balance_main", deps.BalanceHandler.HandleMainBalance)
	mux.HandleFunc("POST "+base+"/check_connected_account_balance", deps.BalanceHandler.HandleConnectedBalance)
	mux.HandleFunc("POST "+base+"/history", deps.BalanceHandler.HandlePayoutHistory)

	// Hosted checkout
	mux.HandleFunc("GET "+base+"/price_set/{price}", deps.CheckoutHandler.HandlePriceSet)
	mux.HandleFunc("GET "+base+"/success", deps.CheckoutHandler.HandleSuccess)
	mux.HandleFunc("GET "+base+"/cancel", deps.CheckoutHandler.HandleCancel)

	// Apply global middleware
	handler := middleware.Logging(logger)(middleware.RequestID(middleware.CORS(mux)))

	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(cfg.Telemetry.ServiceName)(handler)
	}

	return handler
}
