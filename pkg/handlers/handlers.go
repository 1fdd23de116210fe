// Package handlers assembles the HTTP surface of the wallet.
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/chris/upi-wallet/pkg/events"
	"github.com/chris/upi-wallet/pkg/handlers/accounts"
	"github.com/chris/upi-wallet/pkg/handlers/bills"
	"github.com/chris/upi-wallet/pkg/handlers/contacts"
	"github.com/chris/upi-wallet/pkg/handlers/payments"
	"github.com/chris/upi-wallet/pkg/handlers/reminders"
	"github.com/chris/upi-wallet/pkg/handlers/transactions"
	ws_handlers "github.com/chris/upi-wallet/pkg/handlers/websockets"
	"github.com/chris/upi-wallet/pkg/middleware"
	"github.com/chris/upi-wallet/pkg/storage"
	"github.com/chris/upi-wallet/pkg/websockets"
	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
)

// Dependencies are the collaborators the router wires into its handlers.
type Dependencies struct {
	Store       storage.ApiStore
	Events      events.Publisher
	Connections websockets.ConnectionManager
	Publisher   websockets.Publisher
	// Location is the time zone statements are rendered in. Defaults to UTC.
	Location *time.Location
	Logger   *slog.Logger
}

// NewRouter mounts every wallet endpoint on a chi router.
func NewRouter(deps Dependencies) http.Handler {
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Events == nil {
		deps.Events = &events.NoOpPublisher{}
	}
	if deps.Publisher == nil {
		deps.Publisher = &websockets.NoOpPublisher{}
	}

	accountsHandler := accounts.NewAccountsHandler(deps.Store)
	transactionsHandler := transactions.NewTransactionsHandler(deps.Store, deps.Location)
	paymentsHandler := payments.NewPaymentsHandler(deps.Store, deps.Store, deps.Events, deps.Publisher)
	billsHandler := bills.NewBillsHandler(deps.Store)
	remindersHandler := reminders.NewRemindersHandler(deps.Store)
	contactsHandler := contacts.NewContactsHandler(deps.Store)

	r := chi.NewRouter()
	r.Use(chi_middleware.RequestID)
	r.Use(middleware.NewStructuredLogger(deps.Logger))
	r.Use(chi_middleware.Recoverer)

	r.Route("/account", func(r chi.Router) {
		r.Get("/", accountsHandler.GetAccount)
		r.Get("/balance", accountsHandler.GetBalance)
		r.Post("/balance", accountsHandler.UpdateBalance)
		r.Get("/daily-spending", accountsHandler.GetDailySpending)
		r.Post("/daily-spending/reset", accountsHandler.ResetDailySpending)
		r.Put("/daily-limit", accountsHandler.UpdateDailyLimit)
		r.Post("/validate", accountsHandler.ValidateTransaction)
		r.Get("/banks", accountsHandler.ListLinkedBanks)
		r.Post("/banks", accountsHandler.AddLinkedBank)
		r.Put("/banks/primary", accountsHandler.SetPrimaryBank)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", transactionsHandler.ListTransactions)
		r.Post("/", transactionsHandler.CreateTransaction)
		r.Get("/total", transactionsHandler.GetTotal)
		r.Get("/stats/{year}/{month}", transactionsHandler.GetMonthlyStats)
		r.Get("/export.xlsx", transactionsHandler.ExportStatement)
		r.Get("/{id}", transactionsHandler.GetTransaction)
		r.Patch("/{id}", transactionsHandler.UpdateTransaction)
		r.Delete("/{id}", transactionsHandler.DeleteTransaction)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Post("/send", paymentsHandler.Send)
		r.Post("/receive", paymentsHandler.Receive)
		r.Post("/bill", paymentsHandler.PayBill)
		r.Post("/recharge", paymentsHandler.Recharge)
	})

	r.Get("/recharge/operators", paymentsHandler.ListOperators)
	r.Get("/recharge/plans", paymentsHandler.ListPlans)

	r.Route("/bills", func(r chi.Router) {
		r.Get("/", billsHandler.ListBills)
		r.Post("/", billsHandler.CreateBill)
		r.Get("/pending", billsHandler.ListPendingBills)
		r.Get("/upcoming", billsHandler.ListUpcomingBills)
		r.Get("/total-pending", billsHandler.GetTotalPending)
		r.Get("/stats", billsHandler.GetStats)
		r.Get("/{id}", billsHandler.GetBill)
		r.Patch("/{id}", billsHandler.UpdateBill)
		r.Delete("/{id}", billsHandler.DeleteBill)
		r.Post("/{id}/pay", paymentsHandler.PayBillById)
	})

	r.Route("/reminders", func(r chi.Router) {
		r.Get("/", remindersHandler.ListReminders)
		r.Get("/stats", remindersHandler.GetStats)
		r.Post("/{id}/snooze", remindersHandler.Snooze)
		r.Post("/{id}/dismiss", remindersHandler.Dismiss)
		r.Put("/{id}/settings", remindersHandler.UpdateSettings)
	})

	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", contactsHandler.ListContacts)
		r.Post("/", contactsHandler.CreateContact)
		r.Get("/frequent", contactsHandler.ListFrequentContacts)
		r.Get("/lookup", contactsHandler.LookupContact)
		r.Get("/{id}", contactsHandler.GetContact)
		r.Patch("/{id}", contactsHandler.UpdateContact)
		r.Delete("/{id}", contactsHandler.DeleteContact)
		r.Post("/{id}/stats", contactsHandler.RecordContactTransaction)
	})

	if deps.Connections != nil {
		r.Handle("/ws", ws_handlers.NewHandler(deps.Connections))
	}

	return r
}
