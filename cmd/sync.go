package cmd

import (
	"fmt"

	"l10n-sync/core/config"
	"l10n-sync/core/logger"
	"l10n-sync/feature/pack"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runSync(cmd *cobra.Command, args []string) error {
	report, l, err := runPipeline(dryRun)
	if err != nil {
		return err
	}

	printRunReport(l, report)
	return nil
}

// runPipeline wires config, logger, and builder for one pass.
func runPipeline(dry bool) (*pack.RunReport, *zap.Logger, error) {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	builder := pack.NewBuilder(afero.NewOsFs(), cfg.Pack, l, pack.Options{
		DryRun:  dry,
		Variant: onlyVariant,
	})

	report, err := builder.Run()
	if err != nil {
		return nil, nil, err
	}
	return report, l, nil
}

// printRunReport prints a formatted synchronization report using logger.
func printRunReport(l *zap.Logger, report *pack.RunReport) {
	for _, v := range report.Variants {
		s := v.Summary
		l.Info("Variant reconciled",
			zap.String("variant", v.Name),
			zap.Int("total", s.Total),
			zap.Int("translated", s.Translated),
			zap.Int("untranslated", s.Untranslated),
			zap.Int("rejected", s.Rejected),
			zap.Int("stale", s.Stale),
			zap.Int("repairs", s.Repairs),
			zap.Int("warnings", s.Warnings),
		)
	}
	l.Info("Run complete",
		zap.String("run_id", report.RunID),
		zap.Bool("dry_run", report.DryRun),
	)
}
