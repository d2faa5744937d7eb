package models

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a wallet client holding a balance in minor currency units.
//
// Balance is never negative. Version is a monotonic token bumped on every
// balance write; updates are compare-and-swap on it so concurrent mutations of
// the same account cannot silently overwrite each other.
type Account struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Documento string    `db:"documento"`
	Celular   string    `db:"celular"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Balance   int64     `db:"balance"`
	Version   int64     `db:"version"`
	ID        uuid.UUID `db:"id"`
}
