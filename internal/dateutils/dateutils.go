// Package dateutils provides the date arithmetic used by the ledger and the
// aggregation functions.
package dateutils

import (
	"time"

	"fjacquet/ai-wallet/internal/models"
)

// DateLayoutISO is the layout used for dates in exported files.
const DateLayoutISO = "2006-01-02"

// UpcomingWindowDays is how far ahead the ledger looks for due recurring
// payments.
const UpcomingWindowDays = 7

// PeriodCutoff returns the lower bound of an aggregation window ending at
// now. The week window is a flat seven days back. The month window uses
// calendar-month subtraction: the month field is decremented and the day is
// rolled over the way time.AddDate normalizes it, so the boundary tracks
// month lengths rather than a fixed number of hours.
func PeriodCutoff(now time.Time, period models.Period) time.Time {
	if period == models.PeriodWeek {
		return now.AddDate(0, 0, -7)
	}
	return now.AddDate(0, -1, 0)
}

// UpcomingCutoff returns the inclusive upper bound for upcoming recurring
// payments: anything due on or before now plus seven days counts.
func UpcomingCutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, UpcomingWindowDays)
}

// NextMonthlyDue returns the first due date for a subscription created at
// now: exactly one calendar month ahead, with day rollover.
func NextMonthlyDue(now time.Time) time.Time {
	return now.AddDate(0, 1, 0)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}
