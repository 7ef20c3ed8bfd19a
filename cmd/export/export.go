// Package export writes the ledger's transaction log to a CSV file.
package export

import (
	"fjacquet/ai-wallet/cmd/root"
	exporter "fjacquet/ai-wallet/internal/export"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to CSV",
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "Output CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	transactions := l.GetTransactions(0)
	if err := exporter.WriteTransactionsToCSV(transactions, output); err != nil {
		root.Log.Fatalf("Error exporting transactions: %v", err)
	}
	root.Log.Infof("Exported %d transactions to %s", len(transactions), output)
}
