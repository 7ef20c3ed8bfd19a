// Package ledger owns the durable financial state: the transaction log,
// recurring payments, budgets and the cached running balance.
package ledger

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"fjacquet/ai-wallet/internal/models"
	"fjacquet/ai-wallet/internal/report"
	"fjacquet/ai-wallet/internal/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// StorageKey is the namespace the ledger blob is persisted under.
const StorageKey = "ai-wallet-finance-data"

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Ledger is the store for one user's financial state. Every mutation is
// persisted synchronously before it returns; a failed save rolls the
// in-memory state back so the balance invariant
// (balance == Σ income − Σ expense) always holds.
type Ledger struct {
	mu    sync.Mutex
	data  models.LedgerData
	store storage.Store
	now   func() time.Time
}

// New creates a Ledger backed by the given store, loading any previously
// persisted state. A missing blob is a first run, not an error.
func New(store storage.Store) (*Ledger, error) {
	l := &Ledger{
		store: store,
		now:   time.Now,
		data: models.LedgerData{
			Balance:           decimal.Zero,
			Transactions:      []models.Transaction{},
			RecurringPayments: []models.RecurringPayment{},
			Budgets:           []models.Budget{},
		},
	}

	blob, found, err := store.Load(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("error loading ledger: %w", err)
	}
	if found {
		if err := json.Unmarshal(blob, &l.data); err != nil {
			return nil, fmt.Errorf("error parsing ledger data: %w", err)
		}
		log.WithFields(logrus.Fields{
			"transactions": len(l.data.Transactions),
			"recurring":    len(l.data.RecurringPayments),
			"balance":      l.data.Balance,
		}).Debug("Loaded ledger state")
	}

	return l, nil
}

// SetClock overrides the time source. Used by tests and callers that need
// deterministic dates.
func (l *Ledger) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// persist writes the current state to the backing store. Callers hold the
// lock and are responsible for rolling back on error.
func (l *Ledger) persist() error {
	blob, err := json.Marshal(l.data)
	if err != nil {
		return fmt.Errorf("error serializing ledger: %w", err)
	}
	if err := l.store.Save(StorageKey, blob); err != nil {
		return fmt.Errorf("error persisting ledger: %w", err)
	}
	return nil
}

// AddTransaction appends a transaction, adjusts the balance and persists.
// Amounts must be strictly positive; the returned record carries a freshly
// assigned unique id and the date passed in.
func (l *Ledger) AddTransaction(amount decimal.Decimal, category, description string, txType models.TransactionType, date time.Time) (models.Transaction, error) {
	tx := models.Transaction{
		ID:          uuid.NewString(),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		Type:        txType,
	}
	if err := tx.Validate(); err != nil {
		return models.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	prevBalance := l.data.Balance
	if txType == models.TypeIncome {
		l.data.Balance = l.data.Balance.Add(amount)
	} else {
		l.data.Balance = l.data.Balance.Sub(amount)
	}
	l.data.Transactions = append(l.data.Transactions, tx)

	if err := l.persist(); err != nil {
		l.data.Transactions = l.data.Transactions[:len(l.data.Transactions)-1]
		l.data.Balance = prevBalance
		return models.Transaction{}, err
	}

	log.WithFields(logrus.Fields{
		"type":     txType,
		"amount":   amount,
		"category": category,
		"balance":  l.data.Balance,
	}).Info("Transaction recorded")
	return tx, nil
}

// AddRecurringPayment appends a recurring payment and persists. NextDue is
// taken as given; the ledger does not require it to be in the future.
func (l *Ledger) AddRecurringPayment(name string, amount decimal.Decimal, frequency models.Frequency, category string, nextDue time.Time) (models.RecurringPayment, error) {
	payment := models.RecurringPayment{
		ID:        uuid.NewString(),
		Name:      name,
		Amount:    amount,
		Frequency: frequency,
		NextDue:   nextDue,
		Category:  category,
	}
	if err := payment.Validate(); err != nil {
		return models.RecurringPayment{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.data.RecurringPayments = append(l.data.RecurringPayments, payment)
	if err := l.persist(); err != nil {
		l.data.RecurringPayments = l.data.RecurringPayments[:len(l.data.RecurringPayments)-1]
		return models.RecurringPayment{}, err
	}

	log.WithFields(logrus.Fields{
		"name":      name,
		"amount":    amount,
		"frequency": frequency,
	}).Info("Recurring payment recorded")
	return payment, nil
}

// GetBalance returns the cached running balance.
func (l *Ledger) GetBalance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data.Balance
}

// GetTransactions returns transactions sorted most recent first, ties kept
// in insertion order. A limit of 0 or less returns everything.
func (l *Ledger) GetTransactions(limit int) []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	sorted := make([]models.Transaction, len(l.data.Transactions))
	copy(sorted, l.data.Transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// GetRecurringPayments returns the recurring payments in storage order.
func (l *Ledger) GetRecurringPayments() []models.RecurringPayment {
	l.mu.Lock()
	defer l.mu.Unlock()

	payments := make([]models.RecurringPayment, len(l.data.RecurringPayments))
	copy(payments, l.data.RecurringPayments)
	return payments
}

// GetBudgets returns the budgets in storage order.
func (l *Ledger) GetBudgets() []models.Budget {
	l.mu.Lock()
	defer l.mu.Unlock()

	budgets := make([]models.Budget, len(l.data.Budgets))
	copy(budgets, l.data.Budgets)
	return budgets
}

// GetUpcomingRecurring returns payments due within the next seven days,
// boundary inclusive.
func (l *Ledger) GetUpcomingRecurring() []models.RecurringPayment {
	l.mu.Lock()
	now := l.now()
	payments := make([]models.RecurringPayment, len(l.data.RecurringPayments))
	copy(payments, l.data.RecurringPayments)
	l.mu.Unlock()

	return report.UpcomingRecurring(payments, now)
}

// SetBudget upserts the budget for a category. Spent is computed once from
// the current transaction log over the budget's window and frozen into the
// record; it goes stale as new transactions arrive and is only refreshed by
// the next SetBudget call.
func (l *Ledger) SetBudget(category string, limit decimal.Decimal, period models.BudgetPeriod) (models.Budget, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	spent := report.SpendingByCategory(l.data.Transactions, l.now(), period.Window())[category]

	budget := models.Budget{
		Category: category,
		Limit:    limit,
		Spent:    spent,
		Period:   period,
	}

	replaced := false
	prev := l.data.Budgets
	budgets := make([]models.Budget, len(prev))
	copy(budgets, prev)
	for i, b := range budgets {
		if b.Category == category {
			budgets[i] = budget
			replaced = true
			break
		}
	}
	if !replaced {
		budgets = append(budgets, budget)
	}
	l.data.Budgets = budgets

	if err := l.persist(); err != nil {
		l.data.Budgets = prev
		return models.Budget{}, err
	}

	log.WithFields(logrus.Fields{
		"category": category,
		"limit":    limit,
		"spent":    spent,
		"period":   period,
	}).Info("Budget set")
	return budget, nil
}
