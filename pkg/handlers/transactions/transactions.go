package transactions

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/export"
	"github.com/chris/upi-wallet/pkg/handlers/response"
	"github.com/chris/upi-wallet/pkg/mapping"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/chris/upi-wallet/pkg/storage"
)

// TransactionsHandler holds the dependencies for transaction-related handlers.
type TransactionsHandler struct {
	Store storage.TransactionStore
	// Location is the time zone statement dates are rendered in.
	Location *time.Location
	Now      func() time.Time
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(store storage.TransactionStore, loc *time.Location) *TransactionsHandler {
	return &TransactionsHandler{Store: store, Location: loc, Now: time.Now}
}

// ListTransactions handles GET /transactions?type=&status=&q=. Filters combine.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var (
		txType *models.TransactionType
		status *models.TransactionStatus
		query  *string
	)
	if !response.QueryParam(w, r, "type", &txType) ||
		!response.QueryParam(w, r, "status", &status) ||
		!response.QueryParam(w, r, "q", &query) {
		return
	}
	if txType != nil && !txType.Valid() {
		response.BadRequest(w, "Unknown transaction type %q", *txType)
		return
	}
	if status != nil && !status.Valid() {
		response.BadRequest(w, "Unknown transaction status %q", *status)
		return
	}

	txs, err := h.list(r.Context(), txType, status, query)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, txs)
}

// list lets the store apply the most selective filter and narrows the rest here.
func (h *TransactionsHandler) list(ctx context.Context, txType *models.TransactionType, status *models.TransactionStatus, query *string) ([]models.Transaction, error) {
	var (
		txs []models.Transaction
		err error
	)
	switch {
	case query != nil:
		txs, err = h.Store.SearchTransactions(ctx, *query)
	case txType != nil:
		txs, err = h.Store.ListTransactionsByType(ctx, *txType)
	case status != nil:
		txs, err = h.Store.ListTransactionsByStatus(ctx, *status)
	default:
		txs, err = h.Store.ListTransactions(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if txType != nil && tx.Type != *txType {
			continue
		}
		if status != nil && tx.Status != *status {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

// CreateTransaction handles POST /transactions. It records a log entry without moving money.
func (h *TransactionsHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var newTx api.NewTransaction
	if !response.Decode(w, r, &newTx) {
		return
	}
	created, err := h.Store.CreateTransaction(r.Context(), mapping.ToDomainTransaction(&newTx))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// GetTransaction handles GET /transactions/{id}.
func (h *TransactionsHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	tx, err := h.Store.GetTransaction(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, tx)
}

// UpdateTransaction handles PATCH /transactions/{id}.
func (h *TransactionsHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	var update models.TransactionUpdate
	if !response.Decode(w, r, &update) {
		return
	}
	tx, err := h.Store.UpdateTransaction(r.Context(), id, &update)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, tx)
}

// DeleteTransaction handles DELETE /transactions/{id} and returns the removed record.
func (h *TransactionsHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	tx, err := h.Store.DeleteTransaction(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, tx)
}

// GetTotal handles GET /transactions/total.
func (h *TransactionsHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.Store.GetTotalAmount(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, api.Total{Total: total})
}

// GetMonthlyStats handles GET /transactions/stats/{year}/{month}.
func (h *TransactionsHandler) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	var year, month int
	if !response.PathParam(w, r, "year", &year) || !response.PathParam(w, r, "month", &month) {
		return
	}
	stats, err := h.Store.GetMonthlyStats(r.Context(), year, time.Month(month))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

// ExportStatement handles GET /transactions/export.xlsx.
func (h *TransactionsHandler) ExportStatement(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Store.ListTransactions(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	// Buffer so a failed write can still become a proper error response.
	var buf bytes.Buffer
	if err := export.Statement(&buf, txs, h.Location); err != nil {
		response.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"statement_%s.xlsx\"",
		h.Now().In(h.Location).Format("20060102")))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
