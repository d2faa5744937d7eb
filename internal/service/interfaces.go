package service

import (
	"context"

	"github.com/christianmoraless/wallet-api/internal/models"
	"github.com/google/uuid"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// PaymentOrchestrator drives the two-phase payment flow
type PaymentOrchestrator interface {
	RequestPayment(ctx context.Context, payerDocumento, beneficiaryDocumento, beneficiaryCelular string, amount int64) (*PaymentRequestResult, error)
	ConfirmPayment(ctx context.Context, sessionID uuid.UUID, code string) (*models.PaymentSession, error)
}

// Recharger handles balance top-ups
type Recharger interface {
	Recharge(ctx context.Context, documento, celular string, amount int64) (*models.Account, error)
}

// ClientRegistrar handles wallet client registration
type ClientRegistrar interface {
	Register(ctx context.Context, req RegisterClientRequest) (*models.Account, error)
}

// TransactionLister reads ledger history
type TransactionLister interface {
	History(ctx context.Context, documento string) ([]models.LedgerEntry, error)
	Recent(ctx context.Context, documento string, limit int) ([]models.LedgerEntry, error)
}

// Ensure concrete types implement interfaces
var (
	_ PaymentOrchestrator = (*PaymentService)(nil)
	_ Recharger           = (*WalletService)(nil)
	_ ClientRegistrar     = (*ClientService)(nil)
	_ TransactionLister   = (*TransactionService)(nil)
)
