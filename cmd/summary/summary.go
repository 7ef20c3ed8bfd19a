// Package summary prints the derived financial snapshot.
package summary

import (
	"fmt"
	"time"

	"fjacquet/ai-wallet/cmd/root"
	"fjacquet/ai-wallet/internal/dateutils"
	"fjacquet/ai-wallet/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show balance, spending and upcoming payments",
	Run:   summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	snapshot := report.Summary(l, time.Now())

	fmt.Printf("Balance:              %s\n", snapshot.Balance)
	fmt.Printf("Spent this month:     %s\n", snapshot.ThisMonthSpending)
	fmt.Printf("Spent this week:      %s\n", snapshot.ThisWeekSpending)
	fmt.Printf("Upcoming payments:    %d (total %s)\n", snapshot.UpcomingPayments, snapshot.TotalUpcomingAmount)

	if len(snapshot.RecentTransactions) > 0 {
		fmt.Println("Recent transactions:")
		for _, tx := range snapshot.RecentTransactions {
			fmt.Printf("  %s  %-8s %10s  %s (%s)\n",
				dateutils.ToISODate(tx.Date), tx.Type, tx.Amount, tx.Description, tx.Category)
		}
	}
}
