// Package notify delivers payment-related messages to clients.
//
// Delivery is best-effort by contract: callers log failures and continue.
// The confirmation code stored with the session is the source of truth; the
// notification is a convenience channel.
package notify

import (
	"context"
	"log/slog"
)

// Notifier delivers one-time codes and settlement notices to a client's
// contact channel.
type Notifier interface {
	SendOTP(ctx context.Context, email, code, name string) error
	SendPaymentReceived(ctx context.Context, email, name string, amount int64) error
}

// LogNotifier writes notifications to the log instead of delivering them.
// Used in development and whenever SMTP is not configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendOTP(_ context.Context, email, code, name string) error {
	n.logger.Info("confirmation code issued",
		"email", email,
		"client", name,
		"code", code,
	)
	return nil
}

func (n *LogNotifier) SendPaymentReceived(_ context.Context, email, name string, amount int64) error {
	n.logger.Info("payment received notice",
		"email", email,
		"client", name,
		"amount", amount,
	)
	return nil
}
