package payments

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/events"
	"github.com/chris/upi-wallet/pkg/handlers/response"
	"github.com/chris/upi-wallet/pkg/mapping"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/chris/upi-wallet/pkg/recharge"
	"github.com/chris/upi-wallet/pkg/storage"
	"github.com/chris/upi-wallet/pkg/websockets"
)

// PaymentsHandler holds the dependencies for money-moving handlers.
type PaymentsHandler struct {
	Store     storage.PaymentProcessor
	Bills     storage.BillReader
	Events    events.Publisher
	Publisher websockets.Publisher
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(store storage.PaymentProcessor, bills storage.BillReader, events events.Publisher, publisher websockets.Publisher) *PaymentsHandler {
	return &PaymentsHandler{Store: store, Bills: bills, Events: events, Publisher: publisher}
}

// Send handles POST /payments/send.
func (h *PaymentsHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req api.SendMoney
	if !response.Decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Recipient) == "" || strings.TrimSpace(req.RecipientId) == "" {
		response.BadRequest(w, "recipient and recipientId are required")
		return
	}
	h.commit(w, r, mapping.ToSendOrder(&req))
}

// Receive handles POST /payments/receive.
func (h *PaymentsHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var req api.ReceiveMoney
	if !response.Decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Sender) == "" {
		response.BadRequest(w, "sender is required")
		return
	}
	h.commit(w, r, mapping.ToReceiveOrder(&req))
}

// PayBill handles POST /payments/bill.
func (h *PaymentsHandler) PayBill(w http.ResponseWriter, r *http.Request) {
	var req api.BillPayment
	if !response.Decode(w, r, &req) {
		return
	}
	h.payBill(w, r, &req)
}

// PayBillById handles POST /bills/{id}/pay. The body is optional.
func (h *PaymentsHandler) PayBillById(w http.ResponseWriter, r *http.Request) {
	var req api.BillPayment
	if !response.PathParam(w, r, "id", &req.BillId) {
		return
	}
	var body api.BillPayment
	if !response.DecodeOptional(w, r, &body) {
		return
	}
	req.Amount = body.Amount
	h.payBill(w, r, &req)
}

func (h *PaymentsHandler) payBill(w http.ResponseWriter, r *http.Request, req *api.BillPayment) {
	bill, err := h.Bills.GetBill(r.Context(), req.BillId)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	h.commit(w, r, mapping.ToBillOrder(bill, req))
}

// Recharge handles POST /payments/recharge.
func (h *PaymentsHandler) Recharge(w http.ResponseWriter, r *http.Request) {
	var req api.Recharge
	if !response.Decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Phone) == "" {
		response.BadRequest(w, "phone is required")
		return
	}
	op, err := recharge.FindOperator(req.Operator)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	plan, err := recharge.FindPlan(req.PlanId)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	tx := recharge.Transaction(op, plan, req.Phone)
	h.commit(w, r, &models.PaymentOrder{Transaction: tx})
}

// ListOperators handles GET /recharge/operators.
func (h *PaymentsHandler) ListOperators(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, recharge.Operators())
}

// ListPlans handles GET /recharge/plans.
func (h *PaymentsHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, recharge.Plans())
}

// commit records the payment and, once it is durable in the ledger, announces it.
func (h *PaymentsHandler) commit(w http.ResponseWriter, r *http.Request, order *models.PaymentOrder) {
	payment, err := h.Store.RecordPayment(r.Context(), order)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	h.announce(r.Context(), payment)
	response.JSON(w, http.StatusCreated, payment)
}

// announce delivers the payment to the event queue and to live clients.
// The payment is already committed, so failures are only logged.
func (h *PaymentsHandler) announce(ctx context.Context, payment *models.Payment) {
	ctx = context.WithoutCancel(ctx)
	if err := h.Events.PublishPayment(ctx, events.NewPaymentEvent(payment)); err != nil {
		slog.Error("failed to publish payment event", "transaction_id", payment.Transaction.Id, "error", err)
	}
	if err := h.Publisher.Publish(ctx, websockets.NewBalanceUpdate(payment)); err != nil {
		slog.Error("failed to publish websocket message", "transaction_id", payment.Transaction.Id, "error", err)
	}
}
