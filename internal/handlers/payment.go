package handlers

import (
	"net/http"

	"github.com/google/uuid"
)

// clientHeader carries the authenticated caller's documento, set by the
// upstream authentication layer.
const clientHeader = "X-Client-Documento"

type requestPaymentBody struct {
	Documento string `json:"documento"`
	Celular   string `json:"celular"`
	Amount    int64  `json:"amount"`
}

type confirmPaymentBody struct {
	SessionID string `json:"session_id"`
	Code      string `json:"code"`
}

type paymentRequestedData struct {
	SessionID string `json:"session_id"`
}

// RequestPayment handles POST /api/v1/payments/request
func (h *Handler) RequestPayment(w http.ResponseWriter, r *http.Request) {
	payerDocumento := r.Header.Get(clientHeader)
	if payerDocumento == "" {
		writeError(w, http.StatusBadRequest, "missing client identity")
		return
	}

	var body requestPaymentBody
	if !decodeBody(w, r, &body) {
		return
	}

	result, err := h.payments.RequestPayment(r.Context(), payerDocumento, body.Documento, body.Celular, body.Amount)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeOK(w, paymentRequestedData{SessionID: result.SessionID.String()}, result.Message)
}

// ConfirmPayment handles POST /api/v1/payments/confirm
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var body confirmPaymentBody
	if !decodeBody(w, r, &body) {
		return
	}

	sessionID, err := uuid.Parse(body.SessionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	if _, err := h.payments.ConfirmPayment(r.Context(), sessionID, body.Code); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeOK(w, nil, "payment confirmed successfully")
}
