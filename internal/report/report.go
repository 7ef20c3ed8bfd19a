// Package report implements the read-side aggregation functions: spending
// breakdowns, upcoming obligations and the composite financial snapshot.
// Everything here is a pure function over ledger contents; nothing mutates.
package report

import (
	"time"

	"fjacquet/ai-wallet/internal/dateutils"
	"fjacquet/ai-wallet/internal/models"

	"github.com/shopspring/decimal"
)

// Ledger is the read surface the snapshot is derived from.
type Ledger interface {
	GetBalance() decimal.Decimal
	GetTransactions(limit int) []models.Transaction
	GetRecurringPayments() []models.RecurringPayment
}

// recentTransactionCount is how many transactions the snapshot carries.
const recentTransactionCount = 5

// SpendingByCategory sums expense amounts per category over the window
// ending at now. Income transactions are ignored. The lower boundary is
// exclusive: a transaction dated exactly at the cutoff is not counted.
// Categories with no matching transactions are absent from the result.
func SpendingByCategory(transactions []models.Transaction, now time.Time, period models.Period) map[string]decimal.Decimal {
	cutoff := dateutils.PeriodCutoff(now, period)

	spending := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != models.TypeExpense {
			continue
		}
		if !tx.Date.After(cutoff) {
			continue
		}
		spending[tx.Category] = spending[tx.Category].Add(tx.Amount)
	}
	return spending
}

// TotalSpending sums a category breakdown into a single figure.
func TotalSpending(spending map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range spending {
		total = total.Add(amount)
	}
	return total
}

// UpcomingRecurring returns the payments due within the next seven days.
// The boundary is inclusive: a payment due exactly seven days from now
// still counts.
func UpcomingRecurring(payments []models.RecurringPayment, now time.Time) []models.RecurringPayment {
	cutoff := dateutils.UpcomingCutoff(now)

	upcoming := make([]models.RecurringPayment, 0, len(payments))
	for _, p := range payments {
		if !p.NextDue.After(cutoff) {
			upcoming = append(upcoming, p)
		}
	}
	return upcoming
}

// Summary composes the full financial snapshot as of now. An empty ledger
// yields a snapshot of zeros and an empty transaction list.
func Summary(ledger Ledger, now time.Time) models.FinancialSnapshot {
	transactions := ledger.GetTransactions(0)
	upcoming := UpcomingRecurring(ledger.GetRecurringPayments(), now)

	totalUpcoming := decimal.Zero
	for _, p := range upcoming {
		totalUpcoming = totalUpcoming.Add(p.Amount)
	}

	recent := transactions
	if len(recent) > recentTransactionCount {
		recent = recent[:recentTransactionCount]
	}

	return models.FinancialSnapshot{
		Balance:             ledger.GetBalance(),
		ThisMonthSpending:   TotalSpending(SpendingByCategory(transactions, now, models.PeriodMonth)),
		ThisWeekSpending:    TotalSpending(SpendingByCategory(transactions, now, models.PeriodWeek)),
		UpcomingPayments:    len(upcoming),
		TotalUpcomingAmount: totalUpcoming,
		RecentTransactions:  recent,
	}
}
