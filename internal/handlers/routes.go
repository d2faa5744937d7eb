package handlers

import (
	"log/slog"
	"net/http"

	"github.com/christianmoraless/wallet-api/internal/config"
	"github.com/christianmoraless/wallet-api/internal/db"
	"github.com/christianmoraless/wallet-api/internal/middleware"
	"github.com/christianmoraless/wallet-api/internal/notify"
	"github.com/christianmoraless/wallet-api/internal/repository"
	"github.com/christianmoraless/wallet-api/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	notifier notify.Notifier,
	logger *slog.Logger,
) http.Handler {
	otpGen := service.NewOTPGenerator(nil)

	paymentService := service.NewPaymentService(database, cfg.Wallet, otpGen, notifier, logger)
	walletService := service.NewWalletService(database, cfg.Wallet, logger)
	clientService := service.NewClientService(database, logger)
	transactionService := service.NewTransactionService(database)

	handler := NewHandler(paymentService, walletService, clientService, transactionService, database, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handler.GetWelcome)
	mux.HandleFunc("GET /health", handler.GetHealth)

	mux.HandleFunc("POST /api/v1/clients", handler.RegisterClient)
	mux.HandleFunc("POST /api/v1/wallet/recharge", handler.Recharge)
	mux.HandleFunc("POST /api/v1/payments/request", handler.RequestPayment)
	mux.HandleFunc("POST /api/v1/payments/confirm", handler.ConfirmPayment)
	mux.HandleFunc("GET /api/v1/transactions", handler.ListTransactions)

	idempotencyRepo := repository.NewIdempotencyRepository(database)

	var finalHandler http.Handler = mux
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)

	return finalHandler
}

// GetWelcome handles GET /
func (h *Handler) GetWelcome(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, map[string]string{"version": "1.0.0"}, "wallet api")
}
