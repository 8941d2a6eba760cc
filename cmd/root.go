package cmd

import (
	"fmt"
	"os"

	"l10n-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRun      bool
	onlyVariant string
)

// RootCmd represents the base command. Running it with no arguments
// performs a full synchronization pass over all configured variants.
var RootCmd = &cobra.Command{
	Use:   "l10n-sync",
	Short: "Game client localization synchronizer",
	Long: `l10n-sync reconciles the game client's string tables against the
translator-maintained dictionary and emits an installable translation pack.
The client decides which keys exist; the dictionary decides their text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSync,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Plan and report without writing any files")
	RootCmd.PersistentFlags().StringVar(&onlyVariant, "variant", "", "Restrict the run to a single variant")
}
