// Package format renders amounts and dates the way the wallet shows them.
// Amounts use Indian digit grouping: the last three digits, then groups of two.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency renders d as rupees with two decimals, e.g. ₹1,00,000.00.
func Currency(d decimal.Decimal) string {
	return sign(d) + "₹" + grouped(d.Abs().StringFixed(2))
}

// Amount renders d with Indian grouping and at most two decimals, e.g. 1,200 or 1,200.5.
func Amount(d decimal.Decimal) string {
	return sign(d) + grouped(d.Abs().Round(2).String())
}

func sign(d decimal.Decimal) string {
	if d.Round(2).IsNegative() {
		return "-"
	}
	return ""
}

// grouped inserts separators into the integer part of an unsigned decimal string.
func grouped(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		intPart = strings.Join(append(groups, tail), ",")
	}
	if hasFrac {
		return intPart + "." + frac
	}
	return intPart
}

// TransactionDate labels t relative to now in loc: "Today, 3:04 PM", "Yesterday, 3:04 PM"
// or "Jan 02, 3:04 PM".
func TransactionDate(t, now time.Time, loc *time.Location) string {
	t, now = t.In(loc), now.In(loc)
	clock := t.Format("3:04 PM")
	switch {
	case sameDay(t, now):
		return "Today, " + clock
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday, " + clock
	default:
		return t.Format("Jan 02, 3:04 PM")
	}
}

// DateOnly renders t as "Jan 02, 2006".
func DateOnly(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
