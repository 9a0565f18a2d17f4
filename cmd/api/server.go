package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fastpay/internal/shared/config"
)

// StartServer creates the HTTP server and starts it in the background.
func StartServer(handler http.Handler, cfg *config.Config, logger *zap.Logger) *http.Server {
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	return srv
}

// GracefulShutdown drains in-flight requests before stopping the server.
func GracefulShutdown(srv *http.Server, logger *zap.Logger, timeout time.Duration) {
	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error shutting down server", zap.Error(err))
	}

	logger.Info("server stopped")
}
