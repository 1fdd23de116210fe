package storage

import (
	"context"

	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

// ContactStore defines the contact directory.
type ContactStore interface {
	// ListContacts retrieves every contact ordered by name.
	ListContacts(ctx context.Context) ([]models.Contact, error)

	GetContact(ctx context.Context, id int64) (*models.Contact, error)

	// SearchContacts matches name and UPI ID case-insensitively and phone as a substring.
	SearchContacts(ctx context.Context, query string) ([]models.Contact, error)

	// ListFrequentContacts retrieves the five most paid contacts.
	ListFrequentContacts(ctx context.Context) ([]models.Contact, error)

	// FindContact looks a contact up by exact phone number or UPI ID.
	FindContact(ctx context.Context, identifier string) (*models.Contact, error)

	CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	UpdateContact(ctx context.Context, id int64, update *models.ContactUpdate) (*models.Contact, error)
	UpdateContactStats(ctx context.Context, id int64, amount decimal.Decimal) (*models.Contact, error)
	DeleteContact(ctx context.Context, id int64) (*models.Contact, error)
}
