package service

import (
	"context"

	"github.com/christianmoraless/wallet-api/internal/db"
	"github.com/christianmoraless/wallet-api/internal/models"
	"github.com/christianmoraless/wallet-api/internal/repository"
)

const defaultRecentLimit = 5

// TransactionService reads the ledger history for an account
type TransactionService struct {
	db *db.DB
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(database *db.DB) *TransactionService {
	return &TransactionService{db: database}
}

// History returns an account's full ledger, newest first
func (s *TransactionService) History(ctx context.Context, documento string) ([]models.LedgerEntry, error) {
	repo := repository.NewLedgerRepository(s.db)

	entries, err := repo.ListByDocumento(ctx, documento, 0)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to list transactions",
			Err:     err,
		}
	}

	return entries, nil
}

// Recent returns an account's most recent ledger entries
func (s *TransactionService) Recent(ctx context.Context, documento string, limit int) ([]models.LedgerEntry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	repo := repository.NewLedgerRepository(s.db)

	entries, err := repo.ListByDocumento(ctx, documento, limit)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to list recent transactions",
			Err:     err,
		}
	}

	return entries, nil
}
