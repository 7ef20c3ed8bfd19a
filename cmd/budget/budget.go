// Package budget manages per-category spending limits.
package budget

import (
	"fmt"

	"fjacquet/ai-wallet/cmd/root"
	"fjacquet/ai-wallet/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	category string
	limit    string
	period   string
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Set or list category budgets",
	Long: `Without flags lists the stored budgets. With --category and --limit,
upserts the budget for that category; the spent figure is snapshotted from
the current transaction log at write time.`,
	Run: budgetFunc,
}

func init() {
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Budget category")
	Cmd.Flags().StringVarP(&limit, "limit", "l", "", "Spending limit")
	Cmd.Flags().StringVarP(&period, "period", "p", "monthly", "Budget period (monthly or weekly)")
}

func budgetFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	if category == "" || limit == "" {
		for _, b := range l.GetBudgets() {
			fmt.Printf("%-15s limit %10s  spent %10s  (%s)\n", b.Category, b.Limit, b.Spent, b.Period)
		}
		return
	}

	limitDec, err := decimal.NewFromString(limit)
	if err != nil {
		root.Log.Fatalf("Invalid limit %q: %v", limit, err)
	}

	budgetPeriod := models.BudgetPeriod(period)
	if budgetPeriod != models.BudgetMonthly && budgetPeriod != models.BudgetWeekly {
		root.Log.Fatalf("Invalid period %q: must be monthly or weekly", period)
	}

	b, err := l.SetBudget(category, limitDec, budgetPeriod)
	if err != nil {
		root.Log.Fatalf("Error setting budget: %v", err)
	}
	fmt.Printf("Budget set: %s limit %s, already spent %s this %s window\n",
		b.Category, b.Limit, b.Spent, b.Period.Window())
}
