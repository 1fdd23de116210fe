package memory

import (
	"context"
	"log/slog"

	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

// RecordPayment commits a money movement in a single critical section:
//  1. the referenced bill, if any, must exist and be pending;
//  2. receives credit the account, everything else must pass every ledger rule and is debited;
//  3. a completed transaction is appended;
//  4. the bill is settled, or for a send the matching contact's stats are bumped.
//
// Nothing is changed when any step fails.
func (s *Store) RecordPayment(ctx context.Context, order *models.PaymentOrder) (*models.Payment, error) {
	tx := order.Transaction
	if err := validateTransaction(&tx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollLocked()

	billIdx := -1
	if order.BillId != 0 {
		billIdx = s.billIndexLocked(order.BillId)
		if billIdx < 0 {
			return nil, ledger.NotFound("Bill")
		}
		if s.bills[billIdx].Status == models.BILL_PAID {
			return nil, ledger.ErrAlreadyPaid
		}
	}

	now := s.now()
	if tx.Type == models.RECEIVE {
		ledger.Credit(&s.account, tx.Amount, now)
	} else {
		if err := ledger.Enforce(&s.account, tx.Amount); err != nil {
			return nil, err
		}
		if err := ledger.Debit(&s.account, tx.Amount, now); err != nil {
			return nil, err
		}
	}

	created := s.appendTransactionLocked(tx, now)

	if billIdx >= 0 {
		s.settleBillLocked(billIdx, decimal.NewNullDecimal(tx.Amount), now)
	}
	if tx.Type == models.SEND {
		if i := s.contactIndexByIdentifierLocked(tx.RecipientId); i >= 0 {
			s.bumpContactLocked(i, tx.Amount)
		}
	}

	slog.Debug("payment recorded", "transaction_id", created.Id, "type", created.Type, "amount", created.Amount.String())
	return &models.Payment{Transaction: created, Account: *s.account.Clone()}, nil
}
