// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"finflow/dealrecon/internal/config"
	"finflow/dealrecon/internal/engine"
	"finflow/dealrecon/internal/feed"
	"finflow/dealrecon/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	RetailID string
	AsOf     string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the resolved configuration after PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "dealrecon",
		Short: "A CLI tool to reconcile an operations feed into deals, boxes and liabilities.",
		Long: `dealrecon rebuilds the full deal and retail-box state from an operations
feed (CSV, YAML or JSON) and answers status, tranche and overpayment queries
against the reconciled result.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to dealrecon!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			Cfg = cfg

			// Set the configured logger for the engine and the feed loader
			adapter := logging.NewLogrusAdapterFromLogger(Log)
			engine.SetLogger(adapter)
			feed.SetLogger(adapter)

			// Flags win over config file and environment
			if SharedFlags.RetailID == "" {
				SharedFlags.RetailID = cfg.Reconciliation.RetailIndividualID
			}
			if SharedFlags.AsOf == "" {
				SharedFlags.AsOf = cfg.Reconciliation.AsOf
			}
			if delim := os.Getenv("FEED_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting feed delimiter from environment")
				Cfg.Feed.Delimiter = delim
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input feed file (CSV, YAML or JSON)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.RetailID, "retail-id", "r", "", "Counterparty ID whose incomes go to retail boxes")
	Cmd.PersistentFlags().StringVar(&SharedFlags.AsOf, "as-of", "", "Cutoff date for current liability figures (YYYY-MM-DD)")
}

// Delimiter returns the configured feed delimiter, defaulting to a comma
// before configuration has been loaded.
func Delimiter() rune {
	if Cfg == nil {
		return ','
	}
	return Cfg.DelimiterRune()
}
