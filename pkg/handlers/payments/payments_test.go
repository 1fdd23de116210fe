package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/events"
	event_mocks "github.com/chris/upi-wallet/pkg/events/mocks"
	"github.com/chris/upi-wallet/pkg/fixtures"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/chris/upi-wallet/pkg/storage/memory"
	storage_mocks "github.com/chris/upi-wallet/pkg/storage/mocks"
	"github.com/chris/upi-wallet/pkg/websockets"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	handler *PaymentsHandler
	store   *memory.Store
	events  *event_mocks.Publisher
}

func newFixture(t *testing.T) *fixture {
	now := time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)
	store := memory.New(fixtures.MustLoad(), memory.WithClock(func() time.Time { return now }))
	pub := event_mocks.NewPublisher(t)
	return &fixture{
		handler: NewPaymentsHandler(store, store, pub, &websockets.NoOpPublisher{}),
		store:   store,
		events:  pub,
	}
}

func (f *fixture) expectEvent(txType models.TransactionType) {
	f.events.On("PublishPayment", mock.Anything, mock.MatchedBy(func(e *events.PaymentEvent) bool {
		return e.Transaction.Type == txType
	})).Return(nil).Once()
}

func decodePayment(t *testing.T, rr *httptest.ResponseRecorder) models.Payment {
	t.Helper()
	var p models.Payment
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&p))
	return p
}

func TestSend(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.expectEvent(models.SEND)
		rr := httptest.NewRecorder()
		body := `{"amount": 1200, "recipient": "Priya Sharma", "recipientId": "9812345670", "note": "Lunch"}`

		f.handler.Send(rr, httptest.NewRequest(http.MethodPost, "/payments/send", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		p := decodePayment(t, rr)
		assert.Equal(t, int64(9), p.Transaction.Id)
		assert.Equal(t, "24230.5", p.Account.Balance.String())

		contact, err := f.store.GetContact(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 15, contact.TransactionCount)
	})

	t.Run("Daily Limit Exceeded", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.store.UpdateDailyLimit(context.Background(), decimal.NewFromInt(2000))
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		body := `{"amount": 1000, "recipient": "Priya Sharma", "recipientId": "9812345670"}`

		f.handler.Send(rr, httptest.NewRequest(http.MethodPost, "/payments/send", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		var e api.Error
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&e))
		assert.Equal(t, "DailyLimitExceeded", e.Code)
		f.events.AssertNotCalled(t, "PublishPayment", mock.Anything, mock.Anything)
	})

	t.Run("Missing Recipient", func(t *testing.T) {
		f := newFixture(t)
		rr := httptest.NewRecorder()

		f.handler.Send(rr, httptest.NewRequest(http.MethodPost, "/payments/send", strings.NewReader(`{"amount": 10}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestReceive(t *testing.T) {
	f := newFixture(t)
	f.expectEvent(models.RECEIVE)
	rr := httptest.NewRecorder()

	f.handler.Receive(rr, httptest.NewRequest(http.MethodPost, "/payments/receive",
		strings.NewReader(`{"amount": 500, "sender": "Rohan Verma", "senderId": "rohan.verma@okicici"}`)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	p := decodePayment(t, rr)
	assert.Equal(t, "25930.5", p.Account.Balance.String())
	assert.Equal(t, "Rohan Verma", p.Transaction.Recipient)
}

func TestPayBill(t *testing.T) {
	t.Run("By Body", func(t *testing.T) {
		f := newFixture(t)
		f.expectEvent(models.BILL)
		rr := httptest.NewRecorder()

		f.handler.PayBill(rr, httptest.NewRequest(http.MethodPost, "/payments/bill", strings.NewReader(`{"billId": 3}`)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		p := decodePayment(t, rr)
		assert.Equal(t, "420", p.Transaction.Amount.String())
		assert.Equal(t, "Delhi Jal Board", p.Transaction.Recipient)

		bill, err := f.store.GetBill(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, models.BILL_PAID, bill.Status)
	})

	t.Run("By Path", func(t *testing.T) {
		f := newFixture(t)
		f.expectEvent(models.BILL)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "4")
		req := httptest.NewRequest(http.MethodPost, "/bills/4/pay", nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rr := httptest.NewRecorder()

		f.handler.PayBillById(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "760.4", decodePayment(t, rr).Transaction.Amount.String())
	})

	t.Run("Already Paid", func(t *testing.T) {
		f := newFixture(t)
		rr := httptest.NewRecorder()

		f.handler.PayBill(rr, httptest.NewRequest(http.MethodPost, "/payments/bill", strings.NewReader(`{"billId": 1}`)))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Unknown Bill", func(t *testing.T) {
		f := newFixture(t)
		rr := httptest.NewRecorder()

		f.handler.PayBill(rr, httptest.NewRequest(http.MethodPost, "/payments/bill", strings.NewReader(`{"billId": 99}`)))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRecharge(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.expectEvent(models.RECHARGE)
		rr := httptest.NewRecorder()

		f.handler.Recharge(rr, httptest.NewRequest(http.MethodPost, "/payments/recharge",
			strings.NewReader(`{"operator": "airtel", "planId": 1, "phone": "9876543210"}`)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		p := decodePayment(t, rr)
		assert.Equal(t, "Airtel Mobile", p.Transaction.Recipient)
		assert.Equal(t, "Mobile recharge - 28 days", p.Transaction.Note)
	})

	t.Run("Unknown Plan", func(t *testing.T) {
		f := newFixture(t)
		rr := httptest.NewRecorder()

		f.handler.Recharge(rr, httptest.NewRequest(http.MethodPost, "/payments/recharge",
			strings.NewReader(`{"operator": "airtel", "planId": 42, "phone": "9876543210"}`)))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCommitFailures(t *testing.T) {
	t.Run("Store Error", func(t *testing.T) {
		store := storage_mocks.NewPaymentProcessor(t)
		store.On("RecordPayment", mock.Anything, mock.Anything).Return(nil, errors.New("disk on fire"))
		pub := event_mocks.NewPublisher(t)
		h := NewPaymentsHandler(store, nil, pub, &websockets.NoOpPublisher{})
		rr := httptest.NewRecorder()

		h.Receive(rr, httptest.NewRequest(http.MethodPost, "/payments/receive", strings.NewReader(`{"amount": 1, "sender": "x"}`)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		pub.AssertNotCalled(t, "PublishPayment", mock.Anything, mock.Anything)
	})

	t.Run("Publish Error Does Not Fail The Payment", func(t *testing.T) {
		f := newFixture(t)
		f.events.On("PublishPayment", mock.Anything, mock.Anything).Return(errors.New("queue down")).Once()
		rr := httptest.NewRecorder()

		f.handler.Receive(rr, httptest.NewRequest(http.MethodPost, "/payments/receive", strings.NewReader(`{"amount": 1, "sender": "x"}`)))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})
}

func TestCatalogue(t *testing.T) {
	f := newFixture(t)

	rr := httptest.NewRecorder()
	f.handler.ListOperators(rr, httptest.NewRequest(http.MethodGet, "/recharge/operators", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"jio"`)

	rr = httptest.NewRecorder()
	f.handler.ListPlans(rr, httptest.NewRequest(http.MethodGet, "/recharge/plans", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"validity":"365 days"`)
}

