package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/christianmoraless/wallet-api/internal/models"
	"github.com/christianmoraless/wallet-api/internal/service"
	"github.com/christianmoraless/wallet-api/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_RequestPayment(t *testing.T) {
	t.Run("successful request returns session id", func(t *testing.T) {
		payments := mocks.NewMockPaymentOrchestrator(t)
		h := NewHandler(payments, nil, nil, nil, nil, testLogger())

		sessionID := uuid.New()
		payments.On("RequestPayment", mock.Anything, "1045623456", "1098765432", "3109876543", int64(10000)).
			Return(&service.PaymentRequestResult{
				SessionID: sessionID,
				Message:   "confirmation code sent to maria@example.com",
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/request",
			strings.NewReader(`{"documento":"1098765432","celular":"3109876543","amount":10000}`))
		req.Header.Set(clientHeader, "1045623456")
		rec := httptest.NewRecorder()

		h.RequestPayment(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "maria@example.com")

		var data paymentRequestedData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, sessionID.String(), data.SessionID)
	})

	t.Run("missing client header", func(t *testing.T) {
		payments := mocks.NewMockPaymentOrchestrator(t)
		h := NewHandler(payments, nil, nil, nil, nil, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/request",
			strings.NewReader(`{"documento":"1098765432","celular":"3109876543","amount":10000}`))
		rec := httptest.NewRecorder()

		h.RequestPayment(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		payments.AssertNotCalled(t, "RequestPayment")
	})

	t.Run("malformed body", func(t *testing.T) {
		payments := mocks.NewMockPaymentOrchestrator(t)
		h := NewHandler(payments, nil, nil, nil, nil, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/request", strings.NewReader(`{not json`))
		req.Header.Set(clientHeader, "1045623456")
		rec := httptest.NewRecorder()

		h.RequestPayment(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		payments.AssertNotCalled(t, "RequestPayment")
	})

	t.Run("service errors map to HTTP statuses", func(t *testing.T) {
		tests := []struct {
			name       string
			code       string
			wantStatus int
		}{
			{"insufficient funds", service.ErrCodeInsufficientFunds, http.StatusPaymentRequired},
			{"beneficiary not found", service.ErrCodeNotFound, http.StatusNotFound},
			{"self payment", service.ErrCodeInvalidOperation, http.StatusBadRequest},
			{"invalid amount", service.ErrCodeInvalidAmount, http.StatusBadRequest},
			{"internal error", service.ErrCodeInternalError, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				payments := mocks.NewMockPaymentOrchestrator(t)
				h := NewHandler(payments, nil, nil, nil, nil, testLogger())

				payments.On("RequestPayment", mock.Anything, "1045623456", "1098765432", "3109876543", int64(10000)).
					Return(nil, &service.ServiceError{Code: tt.code, Message: tt.name})

				req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/request",
					strings.NewReader(`{"documento":"1098765432","celular":"3109876543","amount":10000}`))
				req.Header.Set(clientHeader, "1045623456")
				rec := httptest.NewRecorder()

				h.RequestPayment(rec, req)

				assert.Equal(t, tt.wantStatus, rec.Code)
				resp := decodeEnvelope(t, rec)
				assert.False(t, resp.Success)
				assert.Equal(t, tt.wantStatus, resp.Cod)
			})
		}
	})
}

func TestHandler_ConfirmPayment(t *testing.T) {
	t.Run("successful confirmation", func(t *testing.T) {
		payments := mocks.NewMockPaymentOrchestrator(t)
		h := NewHandler(payments, nil, nil, nil, nil, testLogger())

		sessionID := uuid.New()
		payments.On("ConfirmPayment", mock.Anything, sessionID, "654321").
			Return(&models.PaymentSession{SessionID: sessionID, Status: models.SessionStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/confirm",
			strings.NewReader(`{"session_id":"`+sessionID.String()+`","code":"654321"}`))
		rec := httptest.NewRecorder()

		h.ConfirmPayment(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "confirmed")
	})

	t.Run("invalid session id", func(t *testing.T) {
		payments := mocks.NewMockPaymentOrchestrator(t)
		h := NewHandler(payments, nil, nil, nil, nil, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/confirm",
			strings.NewReader(`{"session_id":"not-a-uuid","code":"654321"}`))
		rec := httptest.NewRecorder()

		h.ConfirmPayment(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		payments.AssertNotCalled(t, "ConfirmPayment")
	})

	t.Run("confirmation errors map to HTTP statuses", func(t *testing.T) {
		tests := []struct {
			name       string
			code       string
			wantStatus int
		}{
			{"wrong code", service.ErrCodeInvalidCode, http.StatusBadRequest},
			{"expired session", service.ErrCodeSessionExpired, http.StatusBadRequest},
			{"already confirmed", service.ErrCodeAlreadyConfirmed, http.StatusBadRequest},
			{"session not found", service.ErrCodeNotFound, http.StatusNotFound},
			{"retries exhausted", service.ErrCodeConflict, http.StatusConflict},
			{"settlement inconsistency", service.ErrCodeSettlementInconsistency, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				payments := mocks.NewMockPaymentOrchestrator(t)
				h := NewHandler(payments, nil, nil, nil, nil, testLogger())

				sessionID := uuid.New()
				payments.On("ConfirmPayment", mock.Anything, sessionID, "654321").
					Return(nil, &service.ServiceError{Code: tt.code, Message: tt.name})

				req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/confirm",
					strings.NewReader(`{"session_id":"`+sessionID.String()+`","code":"654321"}`))
				rec := httptest.NewRecorder()

				h.ConfirmPayment(rec, req)

				assert.Equal(t, tt.wantStatus, rec.Code)
			})
		}
	})

	t.Run("settlement inconsistency message is not leaked", func(t *testing.T) {
		payments := mocks.NewMockPaymentOrchestrator(t)
		h := NewHandler(payments, nil, nil, nil, nil, testLogger())

		sessionID := uuid.New()
		payments.On("ConfirmPayment", mock.Anything, sessionID, "654321").
			Return(nil, &service.ServiceError{
				Code:    service.ErrCodeSettlementInconsistency,
				Message: "settlement aborted: credit leg failed after debit, transaction rolled back",
			})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/confirm",
			strings.NewReader(`{"session_id":"`+sessionID.String()+`","code":"654321"}`))
		rec := httptest.NewRecorder()

		h.ConfirmPayment(rec, req)

		resp := decodeEnvelope(t, rec)
		assert.Equal(t, "internal error", resp.Message)
	})
}
