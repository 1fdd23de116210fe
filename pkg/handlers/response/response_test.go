package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"Not Found", ledger.NotFound("Bill"), http.StatusNotFound, "NotFound"},
		{"Insufficient Balance", ledger.ErrInsufficientBalance, http.StatusUnprocessableEntity, "InsufficientBalance"},
		{"Daily Limit", ledger.ErrDailyLimitExceeded, http.StatusUnprocessableEntity, "DailyLimitExceeded"},
		{"Invalid Limit", ledger.ErrInvalidLimit, http.StatusBadRequest, "InvalidLimit"},
		{"Invalid Amount", ledger.ErrInvalidAmount, http.StatusBadRequest, "InvalidAmount"},
		{"Already Paid", ledger.ErrAlreadyPaid, http.StatusConflict, "AlreadyPaid"},
		{"Internal", errors.New("boom"), http.StatusInternalServerError, "Internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			Error(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.status, rr.Code)
			var body api.Error
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotContains(t, body.Message, "boom")
		})
	}
}

func TestPathParam(t *testing.T) {
	withParam := func(value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", value)
		return httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.WithValue(context.Background(), chi.RouteCtxKey, rctx))
	}

	t.Run("Success", func(t *testing.T) {
		var id int64
		rr := httptest.NewRecorder()
		assert.True(t, PathParam(rr, withParam("42"), "id", &id))
		assert.Equal(t, int64(42), id)
	})

	t.Run("Malformed", func(t *testing.T) {
		var id int64
		rr := httptest.NewRecorder()
		assert.False(t, PathParam(rr, withParam("abc"), "id", &id))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestQueryParam(t *testing.T) {
	rr := httptest.NewRecorder()

	var days *int
	assert.True(t, QueryParam(rr, httptest.NewRequest(http.MethodGet, "/?other=1", nil), "days", &days))
	assert.Nil(t, days)

	assert.True(t, QueryParam(rr, httptest.NewRequest(http.MethodGet, "/?days=7", nil), "days", &days))
	require.NotNil(t, days)
	assert.Equal(t, 7, *days)

	var bad *int
	assert.False(t, QueryParam(rr, httptest.NewRequest(http.MethodGet, "/?days=soon", nil), "days", &bad))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
