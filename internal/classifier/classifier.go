// Package classifier turns free-form Russian sentences about money into
// ledger mutations. It is a fixed, ordered set of pattern rules: expense
// rules first, then income, then subscriptions, and within a group the
// first matching rule wins. The ordering is load-bearing because wordings
// overlap between groups.
package classifier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fjacquet/ai-wallet/internal/categorizer"
	"fjacquet/ai-wallet/internal/dateutils"
	"fjacquet/ai-wallet/internal/ledger"
	"fjacquet/ai-wallet/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Kind identifies what a classified message did to the ledger.
type Kind string

const (
	KindExpense      Kind = "expense"
	KindIncome       Kind = "income"
	KindSubscription Kind = "subscription"
	KindNone         Kind = "none"
)

// Result is the outcome of classifying one message. Kind KindNone means no
// financial action was detected and the ledger was not touched.
type Result struct {
	Kind         Kind
	Message      string
	Transaction  *models.Transaction
	Recurring    *models.RecurringPayment
}

// Matched reports whether the message triggered a ledger mutation.
func (r Result) Matched() bool {
	return r.Kind != KindNone
}

// rule is one pattern with its extraction plan: which capture group holds
// the amount, which holds the free text, and what the text defaults to when
// the group is empty or absent. textGroup 0 means the rule captures no text.
type rule struct {
	re          *regexp.Regexp
	amountGroup int
	textGroup   int
	defaultText string
}

const (
	defaultExpenseText = "Разное"
	defaultIncomeText  = "доход"
	salaryText         = "зарплата"
)

// currency is the optional "рублей"/"₽" tail after an amount.
const currency = `(?:руб[а-яё]*|₽)?`

var expenseRules = []rule{
	{re: regexp.MustCompile(`(?i)потратил[аи]?\s+(\d+)\s*` + currency + `\s*на\s+(.+)`), amountGroup: 1, textGroup: 2, defaultText: defaultExpenseText},
	{re: regexp.MustCompile(`(?i)купил[аи]?\s+(.+?)\s+за\s+(\d+)\s*` + currency), amountGroup: 2, textGroup: 1, defaultText: defaultExpenseText},
	{re: regexp.MustCompile(`(?i)трата\s+(\d+)\s*` + currency + `\s*(?:на\s+)?(.+)?`), amountGroup: 1, textGroup: 2, defaultText: defaultExpenseText},
	{re: regexp.MustCompile(`(?i)расход\s+(\d+)\s*` + currency + `\s*(?:на\s+)?(.+)?`), amountGroup: 1, textGroup: 2, defaultText: defaultExpenseText},
}

var incomeRules = []rule{
	{re: regexp.MustCompile(`(?i)заработал[а]?\s+(\d+)\s*` + currency + `\s*(?:от\s+|за\s+)?(.+)?`), amountGroup: 1, textGroup: 2, defaultText: defaultIncomeText},
	{re: regexp.MustCompile(`(?i)получил[а]?\s+(\d+)\s*` + currency + `\s*(?:от\s+|за\s+)?(.+)?`), amountGroup: 1, textGroup: 2, defaultText: defaultIncomeText},
	{re: regexp.MustCompile(`(?i)доход\s+(\d+)\s*` + currency + `\s*(?:от\s+)?(.+)?`), amountGroup: 1, textGroup: 2, defaultText: defaultIncomeText},
	{re: regexp.MustCompile(`(?i)зарплата\s+(\d+)\s*` + currency), amountGroup: 1, textGroup: 0, defaultText: salaryText},
}

var subscriptionRules = []rule{
	{re: regexp.MustCompile(`(?i)подписк[ау]\s+(.+?)\s+(\d+)\s*` + currency + `\s*(?:в\s+месяц|месяц)`), amountGroup: 2, textGroup: 1},
	{re: regexp.MustCompile(`(?i)добавь?\s+подписк[ау]\s+(.+?)\s+(\d+)\s*` + currency), amountGroup: 2, textGroup: 1},
}

// extract applies the rule to the message. On match it returns the parsed
// amount and the captured text (or the rule's default when the capture is
// empty). Non-positive amounts are treated as a failed match so the next
// rule gets a chance.
func (r rule) extract(message string) (int64, string, bool) {
	match := r.re.FindStringSubmatch(message)
	if match == nil {
		return 0, "", false
	}

	amount, err := strconv.ParseInt(match[r.amountGroup], 10, 64)
	if err != nil || amount <= 0 {
		return 0, "", false
	}

	text := r.defaultText
	if r.textGroup > 0 && strings.TrimSpace(match[r.textGroup]) != "" {
		text = strings.TrimSpace(match[r.textGroup])
	}
	return amount, text, true
}

// Classifier applies the rule groups in order and records the resulting
// intent on the ledger.
type Classifier struct {
	ledger     *ledger.Ledger
	categories *categorizer.Categorizer
	now        func() time.Time
}

// New creates a Classifier writing to the given ledger and inferring
// expense categories with the given categorizer.
func New(l *ledger.Ledger, c *categorizer.Categorizer) *Classifier {
	return &Classifier{ledger: l, categories: c, now: time.Now}
}

// SetClock overrides the time source, for deterministic tests.
func (c *Classifier) SetClock(now func() time.Time) {
	c.now = now
}

// Classify inspects a raw message and, when it matches a known pattern,
// applies the corresponding ledger mutation. Exactly one rule fires per
// message; once a rule matches, later rules and later groups are never
// evaluated. Unrecognized text yields a KindNone result and no mutation.
func (c *Classifier) Classify(message string) (Result, error) {
	for _, r := range expenseRules {
		if amount, desc, ok := r.extract(message); ok {
			return c.recordExpense(amount, desc)
		}
	}

	for _, r := range incomeRules {
		if amount, desc, ok := r.extract(message); ok {
			return c.recordIncome(amount, desc)
		}
	}

	for _, r := range subscriptionRules {
		if amount, name, ok := r.extract(message); ok {
			return c.recordSubscription(amount, name)
		}
	}

	log.WithField("message", message).Debug("No financial action detected")
	return Result{Kind: KindNone}, nil
}

func (c *Classifier) recordExpense(amount int64, description string) (Result, error) {
	category := c.categories.Categorize(description)
	tx, err := c.ledger.AddTransaction(decimal.NewFromInt(amount), category, description, models.TypeExpense, c.now())
	if err != nil {
		return Result{}, err
	}
	return Result{
		Kind:        KindExpense,
		Message:     fmt.Sprintf("Добавлен расход: %d₽ на %s", amount, description),
		Transaction: &tx,
	}, nil
}

func (c *Classifier) recordIncome(amount int64, description string) (Result, error) {
	tx, err := c.ledger.AddTransaction(decimal.NewFromInt(amount), models.CategoryIncome, description, models.TypeIncome, c.now())
	if err != nil {
		return Result{}, err
	}
	return Result{
		Kind:        KindIncome,
		Message:     fmt.Sprintf("Добавлен доход: %d₽ от %s", amount, description),
		Transaction: &tx,
	}, nil
}

func (c *Classifier) recordSubscription(amount int64, name string) (Result, error) {
	payment, err := c.ledger.AddRecurringPayment(name, decimal.NewFromInt(amount), models.FrequencyMonthly, models.CategorySubscriptions, dateutils.NextMonthlyDue(c.now()))
	if err != nil {
		return Result{}, err
	}
	return Result{
		Kind:      KindSubscription,
		Message:   fmt.Sprintf("Добавлена подписка: %s за %d₽/месяц", name, amount),
		Recurring: &payment,
	}, nil
}
