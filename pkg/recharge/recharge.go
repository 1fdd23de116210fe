// Package recharge holds the static mobile recharge catalogue.
package recharge

import (
	"strings"

	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

// Operator is a mobile network operator.
type Operator struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Plan is a prepaid recharge plan.
type Plan struct {
	Id       int64           `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Validity string          `json:"validity"`
	Benefits string          `json:"benefits"`
	Type     string          `json:"type"`
}

var operators = []Operator{
	{Id: "airtel", Name: "Airtel"},
	{Id: "jio", Name: "Jio"},
	{Id: "vi", Name: "Vi (Vodafone Idea)"},
	{Id: "bsnl", Name: "BSNL"},
}

var plans = []Plan{
	{Id: 1, Amount: decimal.NewFromInt(199), Validity: "28 days", Benefits: "Unlimited calls, 1GB/day, 100 SMS", Type: "Popular"},
	{Id: 2, Amount: decimal.NewFromInt(399), Validity: "56 days", Benefits: "Unlimited calls, 2GB/day, 100 SMS/day", Type: "Best Value"},
	{Id: 3, Amount: decimal.NewFromInt(599), Validity: "84 days", Benefits: "Unlimited calls, 2GB/day, 100 SMS/day", Type: "Long Term"},
	{Id: 4, Amount: decimal.NewFromInt(999), Validity: "365 days", Benefits: "Unlimited calls, 24GB, 3600 SMS", Type: "Annual"},
	{Id: 5, Amount: decimal.NewFromInt(149), Validity: "28 days", Benefits: "Unlimited calls, 1GB total, 300 SMS", Type: "Basic"},
	{Id: 6, Amount: decimal.NewFromInt(799), Validity: "84 days", Benefits: "Unlimited calls, 3GB/day, 100 SMS/day", Type: "Premium"},
}

// Operators lists the supported operators.
func Operators() []Operator {
	return append([]Operator(nil), operators...)
}

// Plans lists the available plans.
func Plans() []Plan {
	return append([]Plan(nil), plans...)
}

func FindOperator(id string) (Operator, error) {
	for _, op := range operators {
		if strings.EqualFold(op.Id, id) {
			return op, nil
		}
	}
	return Operator{}, ledger.NotFound("Operator")
}

func FindPlan(id int64) (Plan, error) {
	for _, p := range plans {
		if p.Id == id {
			return p, nil
		}
	}
	return Plan{}, ledger.NotFound("Plan")
}

// Transaction describes the ledger entry for recharging phone with plan on op.
func Transaction(op Operator, plan Plan, phone string) models.Transaction {
	return models.Transaction{
		Type:        models.RECHARGE,
		Amount:      plan.Amount,
		Recipient:   op.Name + " Mobile",
		RecipientId: phone,
		Note:        "Mobile recharge - " + plan.Validity,
		Category:    "mobile",
	}
}
