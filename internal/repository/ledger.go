package repository

import (
	"context"
	"fmt"

	"github.com/christianmoraless/wallet-api/internal/models"
	"github.com/google/uuid"
)

// LedgerRepository defines the interface for the append-only transaction log.
// There are intentionally no update or delete operations.
type LedgerRepository interface {
	Create(ctx context.Context, entry *models.LedgerEntry) error
	ListByDocumento(ctx context.Context, documento string, limit int) ([]models.LedgerEntry, error)
}

// ledgerRepository implements LedgerRepository
type ledgerRepository struct {
	q Querier
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(q Querier) LedgerRepository {
	return &ledgerRepository{q: q}
}

// Create appends a ledger entry. A zero ID is assigned before insert;
// pre-set IDs are preserved.
func (r *ledgerRepository) Create(ctx context.Context, entry *models.LedgerEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	query := `
		INSERT INTO ledger_entries (id, documento, type, amount, reference_id, counterpart, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.q.QueryRowContext(ctx, query,
		entry.ID,
		entry.Documento,
		entry.Type,
		entry.Amount,
		entry.ReferenceID,
		entry.Counterpart,
		entry.Description,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return nil
}

// ListByDocumento returns an account's entries ordered newest-first. A
// non-positive limit returns the full history.
func (r *ledgerRepository) ListByDocumento(ctx context.Context, documento string, limit int) ([]models.LedgerEntry, error) {
	query := `
		SELECT id, documento, type, amount, reference_id, counterpart, description, created_at
		FROM ledger_entries
		WHERE documento = $1
		ORDER BY created_at DESC
	`
	args := []any{documento}

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var entry models.LedgerEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Documento,
			&entry.Type,
			&entry.Amount,
			&entry.ReferenceID,
			&entry.Counterpart,
			&entry.Description,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}

	return entries, nil
}
