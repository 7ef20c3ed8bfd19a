// Package root contains the root command and the shared wiring every
// subcommand uses to reach the ledger.
package root

import (
	"fmt"

	"fjacquet/ai-wallet/internal/categorizer"
	"fjacquet/ai-wallet/internal/chat"
	"fjacquet/ai-wallet/internal/classifier"
	"fjacquet/ai-wallet/internal/config"
	"fjacquet/ai-wallet/internal/export"
	"fjacquet/ai-wallet/internal/ledger"
	"fjacquet/ai-wallet/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// DataDir overrides the configured data directory when set via flag
	DataDir string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ai-wallet",
		Short: "A conversational personal-finance assistant.",
		Long: `ai-wallet keeps a personal ledger of income, expenses, recurring payments
and budgets, and understands free-form Russian sentences like
"потратил 500 рублей на продукты". With an API key it forwards the
conversation to Gemini with the financial snapshot as context.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ai-wallet!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			Cfg = cfg

			storage.SetLogger(Log)
			ledger.SetLogger(Log)
			categorizer.SetLogger(Log)
			classifier.SetLogger(Log)
			chat.SetLogger(Log)
			export.SetLogger(Log)
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataDir, "data-dir", "d", "", "Directory for the ledger data file (default from config)")
}

// OpenLedger builds the ledger on top of the configured file store.
func OpenLedger() (*ledger.Ledger, error) {
	dir := Cfg.Data.Directory
	if DataDir != "" {
		dir = DataDir
	}
	l, err := ledger.New(storage.NewFileStore(dir))
	if err != nil {
		return nil, fmt.Errorf("error opening ledger: %w", err)
	}
	return l, nil
}

// NewClassifier builds the message classifier with the configured
// category rule table.
func NewClassifier(l *ledger.Ledger) (*classifier.Classifier, error) {
	cats, err := categorizer.NewFromYAML(Cfg.Data.CategoriesFile)
	if err != nil {
		return nil, fmt.Errorf("error loading category rules: %w", err)
	}
	return classifier.New(l, cats), nil
}
