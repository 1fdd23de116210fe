// Package memory implements the storage interfaces on process memory.
//
// A Store owns exactly one account, one transaction log and the bill and
// contact directories. All of them sit behind a single mutex, so a payment
// that debits the account and appends to the log is one critical section.
// Every method returns copies; callers never hold a live reference.
package memory

import (
	"log/slog"
	"sync"
	"time"

	"github.com/chris/upi-wallet/pkg/fixtures"
	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/chris/upi-wallet/pkg/storage"
)

// Store implements the ApiStore interface in memory.
type Store struct {
	mu     sync.Mutex
	now    func() time.Time
	policy ledger.ResetPolicy
	loc    *time.Location

	account           models.Account
	transactions      []models.Transaction
	nextTransactionID int64
	bills             []models.Bill
	nextBillID        int64
	contacts          []models.Contact
	nextContactID     int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithResetPolicy selects how the daily spend counter is reset.
func WithResetPolicy(policy ledger.ResetPolicy) Option {
	return func(s *Store) { s.policy = policy }
}

// WithLocation sets the time zone calendar days are computed in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

// New creates a Store seeded from a deep copy of snap.
func New(snap *fixtures.Snapshot, opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		policy: ledger.ResetCalendar,
		loc:    time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.account = *snap.Account.Clone()
	s.transactions = append([]models.Transaction(nil), snap.Transactions...)
	s.contacts = append([]models.Contact(nil), snap.Contacts...)
	s.bills = make([]models.Bill, len(snap.Bills))
	for i := range snap.Bills {
		s.bills[i] = *snap.Bills[i].Clone()
	}

	s.nextTransactionID = 1
	for _, tx := range s.transactions {
		if tx.Id >= s.nextTransactionID {
			s.nextTransactionID = tx.Id + 1
		}
	}
	s.nextBillID = 1
	for _, b := range s.bills {
		if b.Id >= s.nextBillID {
			s.nextBillID = b.Id + 1
		}
	}
	s.nextContactID = 1
	for _, c := range s.contacts {
		if c.Id >= s.nextContactID {
			s.nextContactID = c.Id + 1
		}
	}

	// The seed counter belongs to the day the store starts on.
	s.rollLocked()
	return s
}

// Make sure we conform to the interface
var _ storage.ApiStore = (*Store)(nil)

// rollLocked brings the daily spend counter up to date. s.mu must be held.
func (s *Store) rollLocked() {
	now := s.now()
	if ledger.Roll(&s.account, s.policy, now, s.loc) {
		slog.Info("daily spend counter reset", "day", s.account.SpentOn)
	}
}

// today is the current calendar date in the store's location, as midnight UTC.
func (s *Store) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
