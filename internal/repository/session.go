package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/christianmoraless/wallet-api/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SessionRepository defines the interface for payment session data access
type SessionRepository interface {
	Create(ctx context.Context, session *models.PaymentSession) error
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*models.PaymentSession, error)
	MarkConfirmed(ctx context.Context, sessionID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// sessionRepository implements SessionRepository
type sessionRepository struct {
	q Querier
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(q Querier) SessionRepository {
	return &sessionRepository{q: q}
}

// Create persists a new payment session. The primary key on session_id is the
// safety net against a random collision.
func (r *sessionRepository) Create(ctx context.Context, session *models.PaymentSession) error {
	query := `
		INSERT INTO payment_sessions
			(session_id, payer_documento, beneficiary_documento, amount, code, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.q.QueryRowContext(ctx, query,
		session.SessionID,
		session.PayerDocumento,
		session.BeneficiaryDocumento,
		session.Amount,
		session.Code,
		session.Status,
		session.ExpiresAt,
	).Scan(&session.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("session id collision: %w", models.ErrDuplicateEntry)
	}
	if err != nil {
		return fmt.Errorf("failed to create payment session: %w", err)
	}

	return nil
}

// FindBySessionID retrieves a payment session by its id
func (r *sessionRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*models.PaymentSession, error) {
	query := `
		SELECT session_id, payer_documento, beneficiary_documento, amount, code, status, expires_at, created_at
		FROM payment_sessions
		WHERE session_id = $1
	`

	var session models.PaymentSession
	err := r.q.QueryRowContext(ctx, query, sessionID).Scan(
		&session.SessionID,
		&session.PayerDocumento,
		&session.BeneficiaryDocumento,
		&session.Amount,
		&session.Code,
		&session.Status,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment session not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment session: %w", err)
	}

	return &session, nil
}

// MarkConfirmed flips a PENDING session to CONFIRMED. The status predicate
// makes confirmation single-use even under concurrent attempts: the second
// writer matches zero rows and gets models.ErrNotFound.
func (r *sessionRepository) MarkConfirmed(ctx context.Context, sessionID uuid.UUID) error {
	query := `
		UPDATE payment_sessions
		SET status = $2
		WHERE session_id = $1 AND status = $3
	`

	result, err := r.q.ExecContext(ctx, query, sessionID, models.SessionStatusConfirmed, models.SessionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark session confirmed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("session not pending: %w", models.ErrNotFound)
	}

	return nil
}

// DeleteExpired removes sessions whose TTL elapsed before the given instant.
// Hygiene only: expiry is enforced at read time regardless.
func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM payment_sessions
		WHERE expires_at < $1 AND status = $2
	`

	result, err := r.q.ExecContext(ctx, query, now, models.SessionStatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}
