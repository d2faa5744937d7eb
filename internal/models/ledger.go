package models

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntryType represents the kind of balance movement an entry records
type LedgerEntryType string

const (
	LedgerEntryTypeRecharge        LedgerEntryType = "RECHARGE"
	LedgerEntryTypePaymentSent     LedgerEntryType = "PAYMENT_SENT"
	LedgerEntryTypePaymentReceived LedgerEntryType = "PAYMENT_RECEIVED"
)

// LedgerEntry is one leg of a balance movement, written once and never
// mutated. Both legs of a settled transfer share the same ReferenceID.
type LedgerEntry struct {
	CreatedAt   time.Time       `db:"created_at"`
	Documento   string          `db:"documento"`
	Type        LedgerEntryType `db:"type"`
	ReferenceID string          `db:"reference_id"`
	Counterpart string          `db:"counterpart"`
	Description string          `db:"description"`
	Amount      int64           `db:"amount"`
	ID          uuid.UUID       `db:"id"`
}

// IdempotencyKey tracks processed requests to prevent duplicate mutations
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
