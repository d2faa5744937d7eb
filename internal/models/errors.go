package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a concurrent balance mutation was detected; the
	// read-validate-write sequence should be retried
	ErrConflict = errors.New("version conflict")

	// ErrDuplicateEntry indicates a unique constraint was violated
	ErrDuplicateEntry = errors.New("duplicate entry")
)
