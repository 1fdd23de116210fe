package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

const frequentContactsLimit = 5

// ListContacts retrieves every contact ordered by name.
func (s *Store) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return s.filterContacts(func(models.Contact) bool { return true }), nil
}

func (s *Store) GetContact(ctx context.Context, id int64) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.contactIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Contact")
	}
	c := s.contacts[i]
	return &c, nil
}

// SearchContacts matches the query against name, UPI ID and phone.
func (s *Store) SearchContacts(ctx context.Context, query string) ([]models.Contact, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	return s.filterContacts(func(c models.Contact) bool {
		return q == "" ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.UpiId), q) ||
			strings.Contains(c.Phone, q)
	}), nil
}

// ListFrequentContacts retrieves the contacts paid most often, at most five.
func (s *Store) ListFrequentContacts(ctx context.Context) ([]models.Contact, error) {
	out := s.filterContacts(func(c models.Contact) bool { return c.TransactionCount > 0 })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TransactionCount > out[j].TransactionCount
	})
	if len(out) > frequentContactsLimit {
		out = out[:frequentContactsLimit]
	}
	return out, nil
}

// FindContact looks a contact up by exact phone number or UPI ID.
func (s *Store) FindContact(ctx context.Context, identifier string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.contactIndexByIdentifierLocked(identifier)
	if i < 0 {
		return nil, ledger.NotFound("Contact")
	}
	c := s.contacts[i]
	return &c, nil
}

func (s *Store) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	c := *contact
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, ledger.InvalidInput("name is required")
	}
	if c.Phone == "" && c.UpiId == "" {
		return nil, ledger.InvalidInput("phone or upiId is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c.Id = s.nextContactID
	s.nextContactID++
	c.LastTransactionAmount = decimal.Zero
	c.TransactionCount = 0
	s.contacts = append(s.contacts, c)
	return &c, nil
}

func (s *Store) UpdateContact(ctx context.Context, id int64, update *models.ContactUpdate) (*models.Contact, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, ledger.InvalidInput("name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.contactIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Contact")
	}
	c := &s.contacts[i]
	if update.Name != nil {
		c.Name = strings.TrimSpace(*update.Name)
	}
	if update.Phone != nil {
		c.Phone = *update.Phone
	}
	if update.UpiId != nil {
		c.UpiId = *update.UpiId
	}
	out := *c
	return &out, nil
}

// UpdateContactStats records a payment of amount to the contact.
func (s *Store) UpdateContactStats(ctx context.Context, id int64, amount decimal.Decimal) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.contactIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Contact")
	}
	s.bumpContactLocked(i, amount)
	c := s.contacts[i]
	return &c, nil
}

func (s *Store) DeleteContact(ctx context.Context, id int64) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.contactIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Contact")
	}
	removed := s.contacts[i]
	s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
	return &removed, nil
}

func (s *Store) bumpContactLocked(i int, amount decimal.Decimal) {
	s.contacts[i].LastTransactionAmount = amount.Abs()
	s.contacts[i].TransactionCount++
}

func (s *Store) contactIndexLocked(id int64) int {
	for i := range s.contacts {
		if s.contacts[i].Id == id {
			return i
		}
	}
	return -1
}

func (s *Store) contactIndexByIdentifierLocked(identifier string) int {
	if identifier == "" {
		return -1
	}
	for i := range s.contacts {
		if s.contacts[i].Phone == identifier || strings.EqualFold(s.contacts[i].UpiId, identifier) {
			return i
		}
	}
	return -1
}

func (s *Store) filterContacts(keep func(models.Contact) bool) []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
