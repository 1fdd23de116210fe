package mapping

import (
	"fmt"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/models"
)

// ToDomainTransaction converts an API NewTransaction model to a domain Transaction model.
func ToDomainTransaction(tx *api.NewTransaction) *models.Transaction {
	return &models.Transaction{
		Type:        tx.Type,
		Amount:      tx.Amount,
		Recipient:   tx.Recipient,
		RecipientId: tx.RecipientId,
		Note:        tx.Note,
		Category:    tx.Category,
	}
}

// ToSendOrder converts a SendMoney request into a send payment.
func ToSendOrder(req *api.SendMoney) *models.PaymentOrder {
	return &models.PaymentOrder{
		Transaction: models.Transaction{
			Type:        models.SEND,
			Amount:      req.Amount,
			Recipient:   req.Recipient,
			RecipientId: req.RecipientId,
			Note:        req.Note,
			Category:    "transfer",
		},
	}
}

// ToReceiveOrder converts a ReceiveMoney request into a receive payment.
// The sender is recorded as the counterparty.
func ToReceiveOrder(req *api.ReceiveMoney) *models.PaymentOrder {
	return &models.PaymentOrder{
		Transaction: models.Transaction{
			Type:        models.RECEIVE,
			Amount:      req.Amount,
			Recipient:   req.Sender,
			RecipientId: req.SenderId,
			Note:        req.Note,
			Category:    "transfer",
		},
	}
}

// ToBillOrder builds the payment settling bill. A missing amount pays the bill in full.
func ToBillOrder(bill *models.Bill, req *api.BillPayment) *models.PaymentOrder {
	amount := bill.Amount
	if req.Amount.Valid {
		amount = req.Amount.Decimal
	}
	return &models.PaymentOrder{
		BillId: bill.Id,
		Transaction: models.Transaction{
			Type:        models.BILL,
			Amount:      amount,
			Recipient:   bill.Provider,
			RecipientId: bill.AccountNumber,
			Note:        fmt.Sprintf("%s bill payment", bill.Category),
			Category:    bill.Category,
		},
	}
}

// ToDomainBill converts an API NewBill model to a domain Bill model.
func ToDomainBill(bill *api.NewBill) *models.Bill {
	return &models.Bill{
		Category:      bill.Category,
		Provider:      bill.Provider,
		AccountNumber: bill.AccountNumber,
		Amount:        bill.Amount,
		DueDate:       bill.DueDate,
	}
}

// ToDomainContact converts an API NewContact model to a domain Contact model.
func ToDomainContact(c *api.NewContact) *models.Contact {
	return &models.Contact{
		Name:  c.Name,
		Phone: c.Phone,
		UpiId: c.UpiId,
	}
}
