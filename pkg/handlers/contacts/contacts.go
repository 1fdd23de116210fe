package contacts

import (
	"net/http"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/handlers/response"
	"github.com/chris/upi-wallet/pkg/mapping"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/chris/upi-wallet/pkg/storage"
)

// ContactsHandler holds the dependencies for contact-related handlers.
type ContactsHandler struct {
	Store storage.ContactStore
}

// NewContactsHandler creates a new ContactsHandler.
func NewContactsHandler(store storage.ContactStore) *ContactsHandler {
	return &ContactsHandler{Store: store}
}

// ListContacts handles GET /contacts?q=.
func (h *ContactsHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	var query *string
	if !response.QueryParam(w, r, "q", &query) {
		return
	}
	var (
		contacts []models.Contact
		err      error
	)
	if query != nil {
		contacts, err = h.Store.SearchContacts(r.Context(), *query)
	} else {
		contacts, err = h.Store.ListContacts(r.Context())
	}
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, contacts)
}

// ListFrequentContacts handles GET /contacts/frequent.
func (h *ContactsHandler) ListFrequentContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Store.ListFrequentContacts(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, contacts)
}

// LookupContact handles GET /contacts/lookup?id=, matching a phone number or UPI id.
func (h *ContactsHandler) LookupContact(w http.ResponseWriter, r *http.Request) {
	var identifier *string
	if !response.QueryParam(w, r, "id", &identifier) {
		return
	}
	if identifier == nil || *identifier == "" {
		response.BadRequest(w, "id is required")
		return
	}
	contact, err := h.Store.FindContact(r.Context(), *identifier)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, contact)
}

// CreateContact handles POST /contacts.
func (h *ContactsHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req api.NewContact
	if !response.Decode(w, r, &req) {
		return
	}
	contact, err := h.Store.CreateContact(r.Context(), mapping.ToDomainContact(&req))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, contact)
}

// GetContact handles GET /contacts/{id}.
func (h *ContactsHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	contact, err := h.Store.GetContact(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, contact)
}

// UpdateContact handles PATCH /contacts/{id}.
func (h *ContactsHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	var update models.ContactUpdate
	if !response.Decode(w, r, &update) {
		return
	}
	contact, err := h.Store.UpdateContact(r.Context(), id, &update)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, contact)
}

// RecordContactTransaction handles POST /contacts/{id}/stats.
func (h *ContactsHandler) RecordContactTransaction(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	var req api.ContactStats
	if !response.Decode(w, r, &req) {
		return
	}
	contact, err := h.Store.UpdateContactStats(r.Context(), id, req.Amount)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, contact)
}

// DeleteContact handles DELETE /contacts/{id}. The removed contact is returned.
func (h *ContactsHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	var id int64
	if !response.PathParam(w, r, "id", &id) {
		return
	}
	contact, err := h.Store.DeleteContact(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, contact)
}
