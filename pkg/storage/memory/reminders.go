package memory

import (
	"context"
	"time"

	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

// dueSoonDays is the horizon of the "due soon" label.
const dueSoonDays = 3

// ListBillReminders retrieves the pending bills whose reminder is active, annotated with
// due-date labels and ordered by due date. A reminder is active when it is enabled, not
// dismissed, not snoozed, and the bill is overdue or due within its DaysBefore window.
func (s *Store) ListBillReminders(ctx context.Context) ([]models.BillReminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeRemindersLocked(), nil
}

// GetReminderStats summarises the active reminders.
func (s *Store) GetReminderStats(ctx context.Context) (*models.ReminderStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &models.ReminderStats{TotalAmount: decimal.Zero, OverdueAmount: decimal.Zero}
	for _, r := range s.activeRemindersLocked() {
		stats.Total++
		stats.TotalAmount = stats.TotalAmount.Add(r.Amount)
		switch {
		case r.IsOverdue:
			stats.Overdue++
			stats.OverdueAmount = stats.OverdueAmount.Add(r.Amount)
		case r.IsDueToday:
			stats.DueToday++
		case r.IsDueSoon:
			stats.DueSoon++
		}
	}
	return stats, nil
}

// SnoozeReminder hides a bill's reminder for d.
func (s *Store) SnoozeReminder(ctx context.Context, id int64, d time.Duration) (*models.Bill, error) {
	if d <= 0 {
		return nil, ledger.InvalidInput("snooze duration must be positive")
	}
	return s.updateReminder(id, func(r *models.ReminderSettings, now time.Time) {
		until := now.Add(d)
		r.SnoozedUntil = &until
	})
}

// DismissReminder hides a bill's reminder until its settings are updated.
func (s *Store) DismissReminder(ctx context.Context, id int64) (*models.Bill, error) {
	return s.updateReminder(id, func(r *models.ReminderSettings, _ time.Time) {
		r.Dismissed = true
	})
}

// UpdateReminderSettings replaces the reminder settings. Enabling a reminder clears
// an earlier dismissal and snooze.
func (s *Store) UpdateReminderSettings(ctx context.Context, id int64, enabled bool, daysBefore int) (*models.Bill, error) {
	if daysBefore < 0 {
		return nil, ledger.InvalidInput("daysBefore must not be negative")
	}
	return s.updateReminder(id, func(r *models.ReminderSettings, _ time.Time) {
		r.Enabled = enabled
		r.DaysBefore = daysBefore
		if enabled {
			r.Dismissed = false
			r.SnoozedUntil = nil
		}
	})
}

func (s *Store) updateReminder(id int64, apply func(*models.ReminderSettings, time.Time)) (*models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.billIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Bill")
	}
	apply(&s.bills[i].Reminder, s.now())
	return s.bills[i].Clone(), nil
}

func (s *Store) activeRemindersLocked() []models.BillReminder {
	now := s.now()
	today := s.today()

	var out []models.BillReminder
	for _, b := range s.filterBillsLocked() {
		r := b.Reminder
		if b.Status != models.BILL_PENDING || !r.Enabled || r.Dismissed {
			continue
		}
		if r.SnoozedUntil != nil && now.Before(*r.SnoozedUntil) {
			continue
		}
		window := r.DaysBefore
		if window <= 0 {
			window = defaultReminderDays
		}
		reminder := annotate(b, daysBetween(today, b.DueDate.Time))
		if reminder.DaysUntilDue > window {
			continue
		}
		out = append(out, reminder)
	}
	return out
}

func annotate(b models.Bill, days int) models.BillReminder {
	r := models.BillReminder{
		Bill:         b,
		DaysUntilDue: days,
		IsOverdue:    days < 0,
		IsDueToday:   days == 0,
		IsDueSoon:    days > 0 && days <= dueSoonDays,
	}
	switch {
	case r.IsOverdue:
		r.Urgency = models.URGENCY_CRITICAL
	case r.IsDueToday:
		r.Urgency = models.URGENCY_HIGH
	case r.IsDueSoon:
		r.Urgency = models.URGENCY_MEDIUM
	default:
		r.Urgency = models.URGENCY_LOW
	}
	return r
}
