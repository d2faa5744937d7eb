package handlers

import (
	"net/http"

	"github.com/christianmoraless/wallet-api/internal/service"
)

type registerClientBody struct {
	Documento string `json:"documento"`
	Celular   string `json:"celular"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

// RegisterClient handles POST /api/v1/clients
func (h *Handler) RegisterClient(w http.ResponseWriter, r *http.Request) {
	var body registerClientBody
	if !decodeBody(w, r, &body) {
		return
	}

	account, err := h.clients.Register(r.Context(), service.RegisterClientRequest{
		Documento: body.Documento,
		Celular:   body.Celular,
		Email:     body.Email,
		Name:      body.Name,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeCreated(w, toAccountData(account), "client registered successfully")
}
