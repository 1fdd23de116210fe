package accounts

import (
	"net/http"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/handlers/response"
	"github.com/chris/upi-wallet/pkg/storage"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store storage.AccountStore
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.AccountStore) *AccountsHandler {
	return &AccountsHandler{Store: store}
}

// GetAccount handles GET /account.
func (h *AccountsHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := h.Store.GetAccount(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, acct)
}

// GetBalance handles GET /account/balance.
func (h *AccountsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Store.GetBalance(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, balance)
}

// GetDailySpending handles GET /account/daily-spending.
func (h *AccountsHandler) GetDailySpending(w http.ResponseWriter, r *http.Request) {
	spending, err := h.Store.GetDailySpending(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, spending)
}

// ResetDailySpending handles POST /account/daily-spending/reset.
func (h *AccountsHandler) ResetDailySpending(w http.ResponseWriter, r *http.Request) {
	acct, err := h.Store.ResetDailySpending(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, acct)
}

// UpdateDailyLimit handles PUT /account/daily-limit.
func (h *AccountsHandler) UpdateDailyLimit(w http.ResponseWriter, r *http.Request) {
	var req api.DailyLimit
	if !response.Decode(w, r, &req) {
		return
	}
	acct, err := h.Store.UpdateDailyLimit(r.Context(), req.DailyLimit)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, acct)
}

// ValidateTransaction handles POST /account/validate. A failed check is still a 200;
// the verdict is in the body.
func (h *AccountsHandler) ValidateTransaction(w http.ResponseWriter, r *http.Request) {
	var req api.Amount
	if !response.Decode(w, r, &req) {
		return
	}
	v, err := h.Store.ValidateTransaction(r.Context(), req.Amount)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, v)
}

// UpdateBalance handles POST /account/balance.
func (h *AccountsHandler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	var req api.BalanceUpdate
	if !response.Decode(w, r, &req) {
		return
	}
	acct, err := h.Store.UpdateBalance(r.Context(), req.Amount, req.Direction)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, acct)
}

// ListLinkedBanks handles GET /account/banks.
func (h *AccountsHandler) ListLinkedBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.Store.GetLinkedBanks(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, banks)
}

// AddLinkedBank handles POST /account/banks.
func (h *AccountsHandler) AddLinkedBank(w http.ResponseWriter, r *http.Request) {
	var req api.NewLinkedBank
	if !response.Decode(w, r, &req) {
		return
	}
	acct, err := h.Store.AddLinkedBank(r.Context(), req.BankName, req.AccountNumber)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, acct.LinkedBanks)
}

// SetPrimaryBank handles PUT /account/banks/primary.
func (h *AccountsHandler) SetPrimaryBank(w http.ResponseWriter, r *http.Request) {
	var req api.PrimaryBank
	if !response.Decode(w, r, &req) {
		return
	}
	acct, err := h.Store.SetPrimaryBank(r.Context(), req.AccountNumber)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, acct.LinkedBanks)
}
