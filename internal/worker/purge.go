// Package worker runs background maintenance tasks.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/christianmoraless/wallet-api/internal/repository"
)

// SessionPurger periodically deletes expired payment sessions.
//
// Expiry is enforced by timestamp comparison at read time, so the purge is
// hygiene only: it keeps the table from accumulating dead rows.
type SessionPurger struct {
	sessions repository.SessionRepository
	logger   *slog.Logger
	interval time.Duration
}

// NewSessionPurger creates a new SessionPurger
func NewSessionPurger(sessions repository.SessionRepository, interval time.Duration, logger *slog.Logger) *SessionPurger {
	return &SessionPurger{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run loops until the context is cancelled
func (p *SessionPurger) Run(ctx context.Context) {
	p.logger.Info("session purger started", "interval", p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("session purger stopped")
			return
		case <-ticker.C:
			p.purge(ctx)
		}
	}
}

func (p *SessionPurger) purge(ctx context.Context) {
	deleted, err := p.sessions.DeleteExpired(ctx, time.Now())
	if err != nil {
		p.logger.Error("failed to purge expired sessions", "error", err)
		return
	}

	if deleted > 0 {
		p.logger.Info("purged expired payment sessions", "count", deleted)
	}
}
