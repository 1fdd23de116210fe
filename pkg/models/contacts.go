package models

import "github.com/shopspring/decimal"

// Contact is a frequently paid payee.
type Contact struct {
	Id                    int64           `json:"id"`
	Name                  string          `json:"name"`
	Phone                 string          `json:"phone"`
	UpiId                 string          `json:"upiId"`
	LastTransactionAmount decimal.Decimal `json:"lastTransactionAmount"`
	TransactionCount      int             `json:"transactionCount"`
}

// ContactUpdate carries a partial update. Nil fields are left untouched.
type ContactUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	UpiId *string `json:"upiId,omitempty"`
}
