package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the lifecycle state of a payment session
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "PENDING"
	SessionStatusConfirmed SessionStatus = "CONFIRMED"
)

// PaymentSession is an in-flight two-phase payment.
//
// A session moves PENDING -> CONFIRMED exactly once. Expiry is not a stored
// state: it is derived from ExpiresAt at read time, so a session past its TTL
// is inert even if a confirmation request carries the right code.
type PaymentSession struct {
	CreatedAt            time.Time     `db:"created_at"`
	ExpiresAt            time.Time     `db:"expires_at"`
	PayerDocumento       string        `db:"payer_documento"`
	BeneficiaryDocumento string        `db:"beneficiary_documento"`
	Code                 string        `db:"code"`
	Status               SessionStatus `db:"status"`
	Amount               int64         `db:"amount"`
	SessionID            uuid.UUID     `db:"session_id"`
}

// Confirmed reports whether the session has already been consumed.
func (s *PaymentSession) Confirmed() bool {
	return s.Status == SessionStatusConfirmed
}

// Expired reports whether the session TTL had elapsed at the given instant.
func (s *PaymentSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
