package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/christianmoraless/wallet-api/internal/config"
	"github.com/christianmoraless/wallet-api/internal/db"
	"github.com/christianmoraless/wallet-api/internal/models"
	"github.com/christianmoraless/wallet-api/internal/repository"
)

// WalletService handles balance recharges
type WalletService struct {
	db     *db.DB
	logger *slog.Logger
	cfg    config.WalletConfig
}

// NewWalletService creates a new WalletService
func NewWalletService(database *db.DB, cfg config.WalletConfig, logger *slog.Logger) *WalletService {
	return &WalletService{
		db:     database,
		cfg:    cfg,
		logger: logger,
	}
}

// Recharge adds funds to the account matching the documento+celular pair and
// records a RECHARGE ledger entry. Retried on balance version conflicts.
func (s *WalletService) Recharge(ctx context.Context, documento, celular string, amount int64) (*models.Account, error) {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxBalanceRetries; attempt++ {
		account, err := s.rechargeOnce(ctx, documento, celular, amount)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, models.ErrConflict) {
			return nil, err
		}

		lastErr = err
		s.logger.Warn("balance version conflict during recharge, retrying",
			"documento", documento,
			"attempt", attempt,
		)
	}

	return nil, &ServiceError{
		Code:    ErrCodeConflict,
		Message: "could not apply recharge due to concurrent balance updates",
		Err:     lastErr,
	}
}

// rechargeOnce runs a single recharge attempt inside its own transaction
func (s *WalletService) rechargeOnce(ctx context.Context, documento, celular string, amount int64) (*models.Account, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txAccountRepo := repository.NewAccountRepository(tx)
	txLedgerRepo := repository.NewLedgerRepository(tx)

	account, err := s.performRecharge(ctx, txAccountRepo, txLedgerRepo, documento, celular, amount)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return account, nil
}

// performRecharge contains the core recharge business logic
func (s *WalletService) performRecharge(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	documento, celular string,
	amount int64,
) (*models.Account, error) {
	if err := ValidateAmount(amount, s.cfg.MinRechargeAmount); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	account, err := accountRepo.FindByIdentity(ctx, documento, celular)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "no client matches the provided documento and celular",
			Err:     err,
		}
	}

	if err := accountRepo.UpdateBalance(ctx, account.Documento, account.Balance+amount, account.Version); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, err
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to credit recharge",
			Err:     err,
		}
	}

	entry := &models.LedgerEntry{
		Documento:   account.Documento,
		Type:        models.LedgerEntryTypeRecharge,
		Amount:      amount,
		ReferenceID: fmt.Sprintf("REC-%d-%s", time.Now().UnixNano(), account.Documento),
		Description: "wallet recharge",
	}
	if err := ledgerRepo.Create(ctx, entry); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to record recharge",
			Err:     err,
		}
	}

	account.Balance += amount
	account.Version++

	return account, nil
}
