// Package handlers implements HTTP handlers for the wallet API.
package handlers

import (
	"log/slog"

	"github.com/christianmoraless/wallet-api/internal/service"
)

// Handler holds the service dependencies for all endpoints
type Handler struct {
	payments      service.PaymentOrchestrator
	wallet        service.Recharger
	clients       service.ClientRegistrar
	transactions  service.TransactionLister
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	payments service.PaymentOrchestrator,
	wallet service.Recharger,
	clients service.ClientRegistrar,
	transactions service.TransactionLister,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		payments:      payments,
		wallet:        wallet,
		clients:       clients,
		transactions:  transactions,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
