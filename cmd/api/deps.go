package main

import (
	"context"

	cloudfirestore "cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"fastpay/internal/domain/ledger"
	"fastpay/internal/infrastructure/firestore"
	"fastpay/internal/infrastructure/stripe"
	httphandlers "fastpay/internal/interfaces/http"
	"fastpay/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	Firestore *cloudfirestore.Client

	// Handlers
	AccountHandler  *httphandlers.AccountHandler
	PaymentHandler  *httphandlers.PaymentHandler
	BalanceHandler  *httphandlers.BalanceHandler
	CheckoutHandler *httphandlers.CheckoutHandler
}

// NewDependencies initializes all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	fsClient, err := firestore.NewClient(ctx, firestore.Credentials{
		CredentialsFile:     cfg.Firebase.CredentialsFile,
		ProjectID:           cfg.Firebase.ProjectID,
		PrivateKeyID:        cfg.Firebase.PrivateKeyID,
		PrivateKey:          cfg.Firebase.PrivateKey,
		ClientEmail:         cfg.Firebase.ClientEmail,
		ClientID:            cfg.Firebase.ClientID,
		AuthURI:             cfg.Firebase.AuthURI,
		TokenURI:            cfg.Firebase.TokenURI,
		AuthProviderCertURL: cfg.Firebase.AuthProviderCertURL,
		ClientCertURL:       cfg.Firebase.ClientCertURL,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("connected to document store")

	ledgerRepo := firestore.NewLedgerRepository(fsClient)
	provider := stripe.NewClient(cfg.Stripe.SecretKey)

	ledgerService := ledger.NewService(ledgerRepo, provider, ledger.Config{
		PublicBaseURL:    cfg.Server.PublicURL,
		CheckoutCurrency: cfg.Checkout.Currency,
	}, logger)

	return &Dependencies{
		Firestore:       fsClient,
		AccountHandler:  httphandlers.NewAccountHandler(ledgerService),
		PaymentHandler:  httphandlers.NewPaymentHandler(ledgerService),
		BalanceHandler:  httphandlers.NewBalanceHandler(ledgerService),
		CheckoutHandler: httphandlers.NewCheckoutHandler(ledgerService),
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.Firestore != nil {
		d.Firestore.Close()
	}
}
