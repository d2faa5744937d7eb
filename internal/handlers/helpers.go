package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/christianmoraless/wallet-api/internal/service"
)

// apiResponse is the uniform envelope returned by every endpoint
type apiResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Cod     int    `json:"cod"`
	Success bool   `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp) //nolint:errcheck // nothing useful to do if write fails
}

func writeOK(w http.ResponseWriter, data any, message string) {
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Cod:     http.StatusOK,
		Message: message,
		Data:    data,
	})
}

func writeCreated(w http.ResponseWriter, data any, message string) {
	writeJSON(w, http.StatusCreated, apiResponse{
		Success: true,
		Cod:     http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{
		Success: false,
		Cod:     status,
		Message: message,
	})
}

// writeServiceError maps service error codes to HTTP statuses
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	switch svcErr.Code {
	case service.ErrCodeNotFound:
		writeError(w, http.StatusNotFound, svcErr.Message)
	case service.ErrCodeInsufficientFunds:
		writeError(w, http.StatusPaymentRequired, svcErr.Message)
	case service.ErrCodeDuplicateClient, service.ErrCodeConflict:
		writeError(w, http.StatusConflict, svcErr.Message)
	case service.ErrCodeInternalError, service.ErrCodeSettlementInconsistency:
		h.logger.Error("request failed", "code", svcErr.Code, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		writeError(w, http.StatusBadRequest, svcErr.Message)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}
