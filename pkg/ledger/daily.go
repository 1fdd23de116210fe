package ledger

import (
	"fmt"
	"time"

	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

// ResetPolicy decides when today's spend counter returns to zero.
type ResetPolicy string

const (
	// ResetCalendar keys the counter by calendar day and zeroes it on the first access of a new day.
	ResetCalendar ResetPolicy = "calendar"
	// ResetManual only zeroes the counter on an explicit reset call.
	ResetManual ResetPolicy = "manual"
)

// ParseResetPolicy validates a configured policy name.
func ParseResetPolicy(s string) (ResetPolicy, error) {
	switch p := ResetPolicy(s); p {
	case ResetCalendar, ResetManual:
		return p, nil
	}
	return "", fmt.Errorf("unknown daily reset policy %q", s)
}

// DayKey is the calendar day of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}

// Roll brings the spend counter up to date under the given policy.
// It reports whether the counter was reset.
func Roll(acct *models.Account, policy ResetPolicy, now time.Time, loc *time.Location) bool {
	if policy != ResetCalendar {
		return false
	}
	today := DayKey(now, loc)
	if acct.SpentOn == today {
		return false
	}
	// An unstamped counter is adopted as today's.
	rolled := acct.SpentOn != ""
	acct.SpentOn = today
	if rolled {
		acct.SpentToday = decimal.Zero
	}
	return rolled
}

// ResetSpending zeroes the counter for the current day.
func ResetSpending(acct *models.Account, now time.Time, loc *time.Location) {
	acct.SpentToday = decimal.Zero
	acct.SpentOn = DayKey(now, loc)
}

// Spending projects the account's daily limit usage.
func Spending(acct *models.Account) *models.DailySpending {
	return &models.DailySpending{
		Spent:     acct.SpentToday,
		Limit:     acct.DailyLimit,
		Remaining: acct.DailyLimit.Sub(acct.SpentToday),
	}
}
