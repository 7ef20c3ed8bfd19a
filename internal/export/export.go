// Package export writes the transaction log to CSV for use in spreadsheets.
package export

import (
	"fmt"
	"os"

	"fjacquet/ai-wallet/internal/dateutils"
	"fjacquet/ai-wallet/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// TransactionRow maps one transaction to the CSV columns.
type TransactionRow struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
}

// NewTransactionRow converts a ledger transaction to its CSV row.
func NewTransactionRow(tx models.Transaction) TransactionRow {
	return TransactionRow{
		ID:          tx.ID,
		Date:        dateutils.ToISODate(tx.Date),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Description: tx.Description,
		Amount:      tx.Amount.String(),
	}
}

// WriteTransactionsToCSV writes transactions to a CSV file.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV")

	rows := make([]TransactionRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, NewTransactionRow(tx))
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
