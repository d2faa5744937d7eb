package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeNotFound          = "not_found"
	ErrCodeInvalidAmount     = "invalid_amount"
	ErrCodeInvalidClient     = "invalid_client"
	ErrCodeInvalidOperation  = "invalid_operation"
	ErrCodeInsufficientFunds = "insufficient_funds"
	ErrCodeInvalidCode       = "invalid_code"
	ErrCodeSessionExpired    = "session_expired"
	ErrCodeAlreadyConfirmed  = "already_confirmed"
	ErrCodeConflict          = "conflict"
	ErrCodeDuplicateClient   = "duplicate_client"

	// ErrCodeSettlementInconsistency flags a credit leg that failed after the
	// debit leg succeeded. The surrounding transaction rolls the debit back,
	// but the condition is alarm-worthy and must never be reported as success.
	ErrCodeSettlementInconsistency = "settlement_inconsistency"

	ErrCodeInternalError = "internal_error"
)
