package reminders

import (
	"net/http"
	"time"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/handlers/response"
	"github.com/chris/upi-wallet/pkg/storage"
)

// DefaultSnoozeHours applies when a snooze request names no duration.
const DefaultSnoozeHours = 24

// RemindersHandler holds the dependencies for bill reminder handlers.
type RemindersHandler struct {
	Store storage.ReminderStore
}

// NewRemindersHandler creates a new RemindersHandler.
func NewRemindersHandler(store storage.ReminderStore) *RemindersHandler {
	return &RemindersHandler{Store: store}
}

// ListReminders handles GET /reminders.
func (h *RemindersHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.Store.ListBillReminders(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, reminders)
}

// GetStats handles GET /reminders/stats.
func (h *RemindersHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.GetReminderStats(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

// Snooze handles POST /reminders/{id}/snooze. The body is optional.
func (h *RemindersHandler) Snooze(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	var req api.Snooze
	if !response.DecodeOptional(w, r, &req) {
		return
	}
	hours := DefaultSnoozeHours
	if req.Hours != nil {
		hours = *req.Hours
	}
	bill, err := h.Store.SnoozeReminder(r.Context(), id, time.Duration(hours)*time.Hour)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, bill)
}

// Dismiss handles POST /reminders/{id}/dismiss.
func (h *RemindersHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	bill, err := h.Store.DismissReminder(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, bill)
}

// UpdateSettings handles PUT /reminders/{id}/settings.
func (h *RemindersHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	var req api.ReminderSettings
	if !response.Decode(w, r, &req) {
		return
	}
	bill, err := h.Store.UpdateReminderSettings(r.Context(), id, req.Enabled, req.DaysBefore)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, bill)
}
