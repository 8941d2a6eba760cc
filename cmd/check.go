package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCmd performs a dry reconciliation pass and fails when anything
// still needs translator attention. Intended as a CI gate.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report translation coverage without writing any files",
	Long: `Check performs a dry reconciliation pass over all configured variants
and exits non-zero when any string is untranslated, rejected, or stale.

Examples:
  # Gate a release on full coverage
  l10n-sync check

  # Check a single variant
  l10n-sync check --variant euro`,
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	report, l, err := runPipeline(true)
	if err != nil {
		return err
	}

	printRunReport(l, report)

	if !report.Clean() {
		return fmt.Errorf("translation coverage incomplete (see report above)")
	}
	l.Info("Translation coverage complete")
	return nil
}
