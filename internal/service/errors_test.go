package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := &ServiceError{Code: ErrCodeInvalidAmount, Message: "invalid amount"}
		assert.Equal(t, "invalid amount", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error is included and unwrappable", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &ServiceError{Code: ErrCodeInternalError, Message: "failed to debit payer", Err: cause}

		assert.Equal(t, "failed to debit payer: connection refused", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("errors.As finds the service error through wrapping", func(t *testing.T) {
		inner := &ServiceError{Code: ErrCodeNotFound, Message: "payer account not found"}
		var svcErr *ServiceError

		assert.True(t, errors.As(inner, &svcErr))
		assert.Equal(t, ErrCodeNotFound, svcErr.Code)
	})
}
