package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/christianmoraless/wallet-api/internal/config"
	"github.com/wneessen/go-mail"
)

// Mailer delivers notifications over SMTP.
//
// Codes are always logged before the send attempt so they stay retrievable
// when the mail server is down, matching the best-effort delivery contract.
type Mailer struct {
	client *mail.Client
	logger *slog.Logger
	from   string
}

// NewMailer creates a Mailer from SMTP configuration
func NewMailer(cfg *config.MailConfig, logger *slog.Logger) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &Mailer{
		client: client,
		logger: logger,
		from:   cfg.From,
	}, nil
}

// SendOTP emails a payment confirmation code to the payer
func (m *Mailer) SendOTP(ctx context.Context, email, code, name string) error {
	m.logger.Info("confirmation code issued",
		"email", email,
		"client", name,
		"code", code,
	)

	return m.send(ctx, email, "Wallet - payment confirmation code", otpBody(name, code))
}

// SendPaymentReceived emails a credit notice to the beneficiary
func (m *Mailer) SendPaymentReceived(ctx context.Context, email, name string, amount int64) error {
	return m.send(ctx, email, "Wallet - payment received", creditBody(name, amount))
}

func otpBody(name, code string) string {
	return fmt.Sprintf(
		"Hello %s,\n\nYour payment confirmation code is: %s\n\nIt expires in 10 minutes. If you did not request this payment, ignore this message.\n",
		name, code,
	)
}

func creditBody(name string, amount int64) string {
	return fmt.Sprintf(
		"Hello %s,\n\nYou received a payment of $%d in your wallet.\n",
		name, amount,
	)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
