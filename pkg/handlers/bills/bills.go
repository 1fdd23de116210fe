package bills

import (
	"net/http"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/handlers/response"
	"github.com/chris/upi-wallet/pkg/mapping"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/chris/upi-wallet/pkg/storage"
)

// DefaultUpcomingDays is the look-ahead of GET /bills/upcoming without ?days=.
const DefaultUpcomingDays = 30

// BillsHandler holds the dependencies for bill-related handlers.
type BillsHandler struct {
	Store storage.BillStore
}

// NewBillsHandler creates a new BillsHandler.
func NewBillsHandler(store storage.BillStore) *BillsHandler {
	return &BillsHandler{Store: store}
}

// ListBills handles GET /bills?category=&status=.
func (h *BillsHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	var (
		category *string
		status   *models.BillStatus
	)
	if !response.QueryParam(w, r, "category", &category) || !response.QueryParam(w, r, "status", &status) {
		return
	}
	if status != nil && !status.Valid() {
		response.BadRequest(w, "Unknown bill status %q", *status)
		return
	}

	var (
		bills []models.Bill
		err   error
	)
	switch {
	case category != nil:
		bills, err = h.Store.ListBillsByCategory(r.Context(), *category)
	case status != nil:
		bills, err = h.Store.ListBillsByStatus(r.Context(), *status)
	default:
		bills, err = h.Store.ListBills(r.Context())
	}
	if err != nil {
		response.Error(w, r, err)
		return
	}
	if category != nil && status != nil {
		filtered := bills[:0]
		for _, b := range bills {
			if b.Status == *status {
				filtered = append(filtered, b)
			}
		}
		bills = filtered
	}
	response.JSON(w, http.StatusOK, bills)
}

// CreateBill handles POST /bills.
func (h *BillsHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var req api.NewBill
	if !response.Decode(w, r, &req) {
		return
	}
	bill, err := h.Store.CreateBill(r.Context(), mapping.ToDomainBill(&req))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, bill)
}

// ListPendingBills handles GET /bills/pending.
func (h *BillsHandler) ListPendingBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.Store.ListPendingBills(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, bills)
}

// ListUpcomingBills handles GET /bills/upcoming?days=.
func (h *BillsHandler) ListUpcomingBills(w http.ResponseWriter, r *http.Request) {
	var days *int
	if !response.QueryParam(w, r, "days", &days) {
		return
	}
	n := DefaultUpcomingDays
	if days != nil {
		n = *days
	}
	bills, err := h.Store.ListUpcomingBills(r.Context(), n)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, bills)
}

// GetTotalPending handles GET /bills/total-pending.
func (h *BillsHandler) GetTotalPending(w http.ResponseWriter, r *http.Request) {
	total, err := h.Store.GetTotalPendingAmount(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, api.Total{Total: total})
}

// GetStats handles GET /bills/stats.
func (h *BillsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.GetCategoryStats(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

// GetBill handles GET /bills/{id}.
func (h *BillsHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	bill, err := h.Store.GetBill(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, bill)
}

// UpdateBill handles PATCH /bills/{id}.
func (h *BillsHandler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	var update models.BillUpdate
	if !response.Decode(w, r, &update) {
		return
	}
	bill, err := h.Store.UpdateBill(r.Context(), id, &update)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, bill)
}

// DeleteBill handles DELETE /bills/{id}. The removed bill is returned.
func (h *BillsHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	bill, err := h.Store.DeleteBill(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, bill)
}
