package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/christianmoraless/wallet-api/internal/models"
	"github.com/lib/pq"
)

// AccountRepository defines the interface for client account data access
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByDocumento(ctx context.Context, documento string) (*models.Account, error)
	FindByIdentity(ctx context.Context, documento, celular string) (*models.Account, error)
	UpdateBalance(ctx context.Context, documento string, newBalance, expectedVersion int64) error
}

// accountRepository implements AccountRepository
type accountRepository struct {
	q Querier
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(q Querier) AccountRepository {
	return &accountRepository{q: q}
}

const uniqueViolation = "23505"

// Create inserts a new client account with its starting balance.
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO clients (id, documento, celular, email, name, balance, version)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
		RETURNING created_at, updated_at
	`

	err := r.q.QueryRowContext(ctx, query,
		account.ID,
		account.Documento,
		account.Celular,
		account.Email,
		account.Name,
		account.Balance,
	).Scan(&account.CreatedAt, &account.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("client already exists: %w", models.ErrDuplicateEntry)
	}
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// FindByDocumento retrieves an account by its documento
func (r *accountRepository) FindByDocumento(ctx context.Context, documento string) (*models.Account, error) {
	query := `
		SELECT id, documento, celular, email, name, balance, version, created_at, updated_at
		FROM clients
		WHERE documento = $1
	`

	return r.scanAccount(r.q.QueryRowContext(ctx, query, documento))
}

// FindByIdentity retrieves an account matching the exact documento and celular
// pair. A mismatch on either field is reported as not found so callers can
// assert the secondary-factor data before mutating a balance.
func (r *accountRepository) FindByIdentity(ctx context.Context, documento, celular string) (*models.Account, error) {
	query := `
		SELECT id, documento, celular, email, name, balance, version, created_at, updated_at
		FROM clients
		WHERE documento = $1 AND celular = $2
	`

	return r.scanAccount(r.q.QueryRowContext(ctx, query, documento, celular))
}

// UpdateBalance writes a new balance guarded by the version the caller read.
// If the stored version moved in the meantime the write is rejected with
// models.ErrConflict and the caller must re-read and retry. A nonexistent
// documento matches zero rows and reports ErrConflict too: callers are
// expected to have read the account in the same transaction, so the retry
// re-read is what surfaces the missing row as ErrNotFound.
func (r *accountRepository) UpdateBalance(ctx context.Context, documento string, newBalance, expectedVersion int64) error {
	query := `
		UPDATE clients
		SET balance = $2,
		    version = version + 1,
		    updated_at = NOW()
		WHERE documento = $1 AND version = $3
	`

	result, err := r.q.ExecContext(ctx, query, documento, newBalance, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("balance update for %s rejected: %w", documento, models.ErrConflict)
	}

	return nil
}

func (r *accountRepository) scanAccount(row *sql.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Documento,
		&account.Celular,
		&account.Email,
		&account.Name,
		&account.Balance,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return &account, nil
}
