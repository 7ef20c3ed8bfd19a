// Package models defines the domain types shared across the application:
// transactions, recurring payments, budgets and the derived financial snapshot.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Frequency is the cadence of a recurring payment.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Period is the lookback window used by spending aggregations.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// BudgetPeriod is the cadence a budget limit applies to.
type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetWeekly  BudgetPeriod = "weekly"
)

// Window maps a budget cadence to the aggregation period used to compute
// its spent snapshot.
func (p BudgetPeriod) Window() Period {
	if p == BudgetWeekly {
		return PeriodWeek
	}
	return PeriodMonth
}

// Fixed category labels used by the classifier and the category inferencer.
const (
	CategoryGroceries     = "Продукты"
	CategoryTransport     = "Транспорт"
	CategoryEntertainment = "Развлечения"
	CategoryHealth        = "Здоровье"
	CategoryClothing      = "Одежда"
	CategoryCafe          = "Кафе"
	CategoryOther         = "Прочее"
	CategoryIncome        = "Доход"
	CategorySubscriptions = "Subscriptions"
)

// Transaction is a single ledger entry. Entries are append-only and never
// mutated after creation.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
}

// Validate checks the fields a caller controls. Amounts must be strictly
// positive; the sign is carried by Type, not by Amount.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	return nil
}

// RecurringPayment is a scheduled future obligation. NextDue is advisory:
// the ledger never rolls it forward after it elapses.
type RecurringPayment struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency Frequency       `json:"frequency"`
	NextDue   time.Time       `json:"nextDue"`
	Category  string          `json:"category"`
}

// Validate checks the caller-controlled fields of a recurring payment.
// NextDue is deliberately not checked against the clock.
func (r RecurringPayment) Validate() error {
	if !r.Amount.IsPositive() {
		return fmt.Errorf("recurring payment amount must be positive, got %s", r.Amount)
	}
	switch r.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return nil
	default:
		return fmt.Errorf("unknown frequency %q", r.Frequency)
	}
}

// Budget is a per-category spending limit. Spent is a snapshot taken when
// the budget was last written; it is not kept in sync with new transactions.
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
	Period   BudgetPeriod    `json:"period"`
}

// FinancialSnapshot is a derived, point-in-time summary of the ledger.
// It is recomputed on every request and never persisted.
type FinancialSnapshot struct {
	Balance             decimal.Decimal
	ThisMonthSpending   decimal.Decimal
	ThisWeekSpending    decimal.Decimal
	UpcomingPayments    int
	TotalUpcomingAmount decimal.Decimal
	RecentTransactions  []Transaction
}

// LedgerData is the persisted layout of the ledger blob. Date fields
// round-trip through RFC 3339 text via encoding/json.
type LedgerData struct {
	Balance           decimal.Decimal    `json:"balance"`
	Transactions      []Transaction      `json:"transactions"`
	RecurringPayments []RecurringPayment `json:"recurringPayments"`
	Budgets           []Budget           `json:"budgets"`
}
