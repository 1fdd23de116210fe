package transactions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/export"
	"github.com/chris/upi-wallet/pkg/fixtures"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/chris/upi-wallet/pkg/storage/memory"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testNow = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

func newHandler() *TransactionsHandler {
	store := memory.New(fixtures.MustLoad(), memory.WithClock(func() time.Time { return testNow }))
	h := NewTransactionsHandler(store, time.UTC)
	h.Now = func() time.Time { return testNow }
	return h
}

func withParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeTransactions(t *testing.T, rr *httptest.ResponseRecorder) []models.Transaction {
	t.Helper()
	var txs []models.Transaction
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&txs))
	return txs
}

func TestListTransactions(t *testing.T) {
	h := newHandler()

	t.Run("All", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListTransactions(rr, httptest.NewRequest(http.MethodGet, "/transactions", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeTransactions(t, rr), 8)
	})

	t.Run("Combined Filters", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListTransactions(rr, httptest.NewRequest(http.MethodGet, "/transactions?type=send&status=completed", nil))

		txs := decodeTransactions(t, rr)
		require.Len(t, txs, 2)
		assert.Equal(t, int64(1), txs[0].Id)
		assert.Equal(t, int64(8), txs[1].Id)
	})

	t.Run("Search", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListTransactions(rr, httptest.NewRequest(http.MethodGet, "/transactions?q=gift", nil))

		txs := decodeTransactions(t, rr)
		require.Len(t, txs, 1)
		assert.Equal(t, "Vikram Singh", txs[0].Recipient)
	})

	t.Run("Unknown Type", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListTransactions(rr, httptest.NewRequest(http.MethodGet, "/transactions?type=gift", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCreateTransaction(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := newHandler()
		body := `{"type": "send", "amount": 250, "recipient": "Meera Nair", "recipientId": "9856789014"}`
		rr := httptest.NewRecorder()

		h.CreateTransaction(rr, httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var tx models.Transaction
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&tx))
		assert.Equal(t, int64(9), tx.Id)
		assert.Equal(t, models.COMPLETED, tx.Status)
	})

	t.Run("Invalid Amount", func(t *testing.T) {
		h := newHandler()
		rr := httptest.NewRecorder()

		h.CreateTransaction(rr, httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(`{"type": "send", "amount": -5}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTransactionById(t *testing.T) {
	h := newHandler()

	t.Run("Get", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.GetTransaction(rr, withParams(httptest.NewRequest(http.MethodGet, "/transactions/3", nil), "id", "3"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.GetTransaction(rr, withParams(httptest.NewRequest(http.MethodGet, "/transactions/99", nil), "id", "99"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Malformed Id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.GetTransaction(rr, withParams(httptest.NewRequest(http.MethodGet, "/transactions/x", nil), "id", "x"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Update", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/transactions/5", strings.NewReader(`{"status": "failed"}`))
		h.UpdateTransaction(rr, withParams(req, "id", "5"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var tx models.Transaction
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&tx))
		assert.Equal(t, models.FAILED, tx.Status)
	})

	t.Run("Delete", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.DeleteTransaction(rr, withParams(httptest.NewRequest(http.MethodDelete, "/transactions/8", nil), "id", "8"))
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		h.GetTransaction(rr, withParams(httptest.NewRequest(http.MethodGet, "/transactions/8", nil), "id", "8"))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAggregates(t *testing.T) {
	h := newHandler()

	rr := httptest.NewRecorder()
	h.GetTotal(rr, httptest.NewRequest(http.MethodGet, "/transactions/total", nil))
	var total api.Total
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&total))
	assert.Equal(t, "850.25", total.Total.String())

	rr = httptest.NewRecorder()
	h.GetMonthlyStats(rr, withParams(httptest.NewRequest(http.MethodGet, "/transactions/stats/2026/10", nil), "year", "2026", "month", "10"))
	var stats models.MonthlyStats
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&stats))
	assert.Equal(t, "3800", stats.Total.String())

	rr = httptest.NewRecorder()
	h.GetMonthlyStats(rr, withParams(httptest.NewRequest(http.MethodGet, "/transactions/stats/2026/13", nil), "year", "2026", "month", "13"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestExportStatement(t *testing.T) {
	h := newHandler()
	rr := httptest.NewRecorder()

	h.ExportStatement(rr, httptest.NewRequest(http.MethodGet, "/transactions/export.xlsx", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, export.ContentType, rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "statement_20261015.xlsx")

	f, err := excelize.OpenReader(rr.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 9)
}
