// Package root contains the root command for the application
package root

import (
	"fjacquet/finance-ledger/internal/config"
	"fjacquet/finance-ledger/internal/export"
	"fjacquet/finance-ledger/internal/ledger"
	"fjacquet/finance-ledger/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration resolved in PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-ledger",
		Short: "A personal finance ledger: record transactions, track goals, report spending.",
		Long: `finance-ledger is a CLI tool that records income and expense transactions
in a single JSON ledger file, tracks per-category spending goals and
produces aggregate expense reports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finance-ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Set the configured logger for all packages
			store.SetLogger(Log)
			ledger.SetLogger(Log)
			export.SetLogger(Log)

			if Cfg.Export.Delimiter != "" {
				export.SetDelimiter([]rune(Cfg.Export.Delimiter)[0])
			}
		},
	}

	// LedgerFile overrides the configured ledger file path when set
	LedgerFile string

	// Specific add command flags
	Amount      string
	Category    string
	Description string
	Date        string
	Income      bool

	// Specific list/report command flags
	Month  string
	Output string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&LedgerFile, "file", "f", "", "Ledger file (defaults to data.file from configuration)")
}

// OpenLedger builds the ledger backed by the resolved ledger file.
func OpenLedger() *ledger.Ledger {
	file := LedgerFile
	if file == "" {
		file = Cfg.Data.File
	}

	s := store.NewLedgerStore(file)
	s.CategoriesFile = Cfg.Data.CategoriesFile
	return ledger.New(s)
}
