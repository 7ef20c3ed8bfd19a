package report

import (
	"testing"
	"time"

	"fjacquet/ai-wallet/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func tx(txType models.TransactionType, amount int64, category string, date time.Time) models.Transaction {
	return models.Transaction{
		ID:       "test",
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Date:     date,
		Type:     txType,
	}
}

func TestSpendingByCategoryWeek(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TypeExpense, 100, "Продукты", testNow.AddDate(0, 0, -1)),
		tx(models.TypeExpense, 50, "Продукты", testNow.AddDate(0, 0, -6)),
		tx(models.TypeExpense, 200, "Транспорт", testNow.AddDate(0, 0, -3)),
		// Older than seven days: excluded.
		tx(models.TypeExpense, 999, "Продукты", testNow.AddDate(0, 0, -8)),
		// Income never counts as spending.
		tx(models.TypeIncome, 5000, "Доход", testNow.AddDate(0, 0, -1)),
	}

	spending := SpendingByCategory(transactions, testNow, models.PeriodWeek)

	require.Len(t, spending, 2)
	assert.True(t, spending["Продукты"].Equal(decimal.NewFromInt(150)))
	assert.True(t, spending["Транспорт"].Equal(decimal.NewFromInt(200)))
}

func TestSpendingByCategoryMonthBoundary(t *testing.T) {
	oneMonthAgo := testNow.AddDate(0, -1, 0)

	transactions := []models.Transaction{
		// Exactly one calendar month before now: the lower boundary is
		// exclusive, so this one is out.
		tx(models.TypeExpense, 999, "Продукты", oneMonthAgo),
		// One calendar month minus a day: in.
		tx(models.TypeExpense, 100, "Продукты", oneMonthAgo.AddDate(0, 0, 1)),
	}

	spending := SpendingByCategory(transactions, testNow, models.PeriodMonth)

	require.Len(t, spending, 1)
	assert.True(t, spending["Продукты"].Equal(decimal.NewFromInt(100)))
}

func TestSpendingByCategoryUsesCalendarMonths(t *testing.T) {
	// From March 15 the month window reaches back to February 15 — 29 days
	// in 2024, not a fixed 30.
	feb16 := time.Date(2024, time.February, 16, 12, 0, 0, 0, time.UTC)

	spending := SpendingByCategory([]models.Transaction{
		tx(models.TypeExpense, 100, "Продукты", feb16),
	}, testNow, models.PeriodMonth)

	require.Len(t, spending, 1)
}

func TestSpendingByCategoryEmptyLog(t *testing.T) {
	spending := SpendingByCategory(nil, testNow, models.PeriodMonth)
	assert.Empty(t, spending)
}

func TestTotalSpending(t *testing.T) {
	total := TotalSpending(map[string]decimal.Decimal{
		"Продукты":  decimal.NewFromInt(150),
		"Транспорт": decimal.NewFromInt(200),
	})
	assert.True(t, total.Equal(decimal.NewFromInt(350)))

	assert.True(t, TotalSpending(nil).Equal(decimal.Zero))
}

func TestUpcomingRecurringBoundary(t *testing.T) {
	payments := []models.RecurringPayment{
		{ID: "due-now", Amount: decimal.NewFromInt(100), NextDue: testNow},
		{ID: "due-in-7d", Amount: decimal.NewFromInt(200), NextDue: testNow.AddDate(0, 0, 7)},
		{ID: "due-in-8d", Amount: decimal.NewFromInt(300), NextDue: testNow.AddDate(0, 0, 8)},
		{ID: "overdue", Amount: decimal.NewFromInt(400), NextDue: testNow.AddDate(0, 0, -2)},
	}

	upcoming := UpcomingRecurring(payments, testNow)

	require.Len(t, upcoming, 3)
	ids := []string{upcoming[0].ID, upcoming[1].ID, upcoming[2].ID}
	assert.Equal(t, []string{"due-now", "due-in-7d", "overdue"}, ids)
}

type fakeLedger struct {
	balance      decimal.Decimal
	transactions []models.Transaction
	payments     []models.RecurringPayment
}

func (f *fakeLedger) GetBalance() decimal.Decimal { return f.balance }

func (f *fakeLedger) GetTransactions(limit int) []models.Transaction {
	if limit > 0 && limit < len(f.transactions) {
		return f.transactions[:limit]
	}
	return f.transactions
}

func (f *fakeLedger) GetRecurringPayments() []models.RecurringPayment { return f.payments }

func TestSummary(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TypeExpense, 100, "Продукты", testNow.AddDate(0, 0, -1)),
		tx(models.TypeExpense, 300, "Кафе", testNow.AddDate(0, 0, -20)),
		tx(models.TypeIncome, 5000, "Доход", testNow.AddDate(0, 0, -2)),
	}
	payments := []models.RecurringPayment{
		{ID: "a", Amount: decimal.NewFromInt(299), NextDue: testNow.AddDate(0, 0, 3)},
		{ID: "b", Amount: decimal.NewFromInt(500), NextDue: testNow.AddDate(0, 0, 30)},
	}

	snapshot := Summary(&fakeLedger{
		balance:      decimal.NewFromInt(4600),
		transactions: transactions,
		payments:     payments,
	}, testNow)

	assert.True(t, snapshot.Balance.Equal(decimal.NewFromInt(4600)))
	assert.True(t, snapshot.ThisMonthSpending.Equal(decimal.NewFromInt(400)))
	assert.True(t, snapshot.ThisWeekSpending.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, snapshot.UpcomingPayments)
	assert.True(t, snapshot.TotalUpcomingAmount.Equal(decimal.NewFromInt(299)))
	assert.Len(t, snapshot.RecentTransactions, 3)
}

func TestSummaryEmptyLedger(t *testing.T) {
	snapshot := Summary(&fakeLedger{balance: decimal.Zero}, testNow)

	assert.True(t, snapshot.Balance.IsZero())
	assert.True(t, snapshot.ThisMonthSpending.IsZero())
	assert.True(t, snapshot.ThisWeekSpending.IsZero())
	assert.Equal(t, 0, snapshot.UpcomingPayments)
	assert.True(t, snapshot.TotalUpcomingAmount.IsZero())
	assert.Empty(t, snapshot.RecentTransactions)
}

func TestSummaryLimitsRecentTransactions(t *testing.T) {
	var transactions []models.Transaction
	for i := 0; i < 8; i++ {
		transactions = append(transactions, tx(models.TypeExpense, 10, "Прочее", testNow.AddDate(0, 0, -i)))
	}

	snapshot := Summary(&fakeLedger{transactions: transactions}, testNow)
	assert.Len(t, snapshot.RecentTransactions, 5)
}
