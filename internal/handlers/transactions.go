package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/christianmoraless/wallet-api/internal/models"
)

type ledgerEntryData struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	ReferenceID string    `json:"reference_id"`
	Counterpart string    `json:"counterpart,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Amount      int64     `json:"amount"`
}

func toLedgerData(entries []models.LedgerEntry) []ledgerEntryData {
	data := make([]ledgerEntryData, 0, len(entries))
	for _, entry := range entries {
		data = append(data, ledgerEntryData{
			ID:          entry.ID.String(),
			Type:        string(entry.Type),
			ReferenceID: entry.ReferenceID,
			Counterpart: entry.Counterpart,
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt,
			Amount:      entry.Amount,
		})
	}
	return data
}

// ListTransactions handles GET /api/v1/transactions
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	documento := r.Header.Get(clientHeader)
	if documento == "" {
		writeError(w, http.StatusBadRequest, "missing client identity")
		return
	}

	var (
		entries []models.LedgerEntry
		err     error
	)
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, convErr := strconv.Atoi(limitStr)
		if convErr != nil || limit < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		entries, err = h.transactions.Recent(r.Context(), documento, limit)
	} else {
		entries, err = h.transactions.History(r.Context(), documento)
	}

	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeOK(w, toLedgerData(entries), "transaction history retrieved")
}
