package handlers

import (
	"fmt"
	"net/http"

	"github.com/christianmoraless/wallet-api/internal/models"
)

type rechargeBody struct {
	Documento string `json:"documento"`
	Celular   string `json:"celular"`
	Amount    int64  `json:"amount"`
}

type accountData struct {
	Documento string `json:"documento"`
	Celular   string `json:"celular"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Balance   int64  `json:"balance"`
}

func toAccountData(account *models.Account) accountData {
	return accountData{
		Documento: account.Documento,
		Celular:   account.Celular,
		Email:     account.Email,
		Name:      account.Name,
		Balance:   account.Balance,
	}
}

// Recharge handles POST /api/v1/wallet/recharge
func (h *Handler) Recharge(w http.ResponseWriter, r *http.Request) {
	var body rechargeBody
	if !decodeBody(w, r, &body) {
		return
	}

	account, err := h.wallet.Recharge(r.Context(), body.Documento, body.Celular, body.Amount)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	message := fmt.Sprintf("recharge of %d successful, new balance: %d", body.Amount, account.Balance)
	writeOK(w, toAccountData(account), message)
}
