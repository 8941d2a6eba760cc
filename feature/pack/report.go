package pack

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"l10n-sync/core/reconcile"
)

// ReportFileName is where the run report lands inside the output root.
const ReportFileName = "sync-report.json"

// RunReport is the machine-readable record of one sync run. CI archives
// it next to the generated pack so translators can see what needs
// attention without digging through logs.
type RunReport struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`

	// StartedAt is when the run began (UTC).
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the run completed (UTC).
	FinishedAt time.Time `json:"finished_at"`

	// DryRun indicates no files were written.
	DryRun bool `json:"dry_run"`

	// Variants holds one report per built variant.
	Variants []VariantReport `json:"variants"`
}

// VariantReport aggregates the results of one output variant.
type VariantReport struct {
	// Name is the variant name.
	Name string `json:"name"`

	// Summary accumulates all file summaries of the variant.
	Summary reconcile.Summary `json:"summary"`

	// Files holds one report per string-table file.
	Files []FileReport `json:"files"`
}

// FileReport captures the reconciliation outcome for one file.
type FileReport struct {
	// Path is the file's table-relative path.
	Path string `json:"path"`

	// Summary provides the file's aggregate counts.
	Summary reconcile.Summary `json:"summary"`

	// Untranslated lists keys with no dictionary entry.
	Untranslated []int `json:"untranslated,omitempty"`

	// Rejected lists keys whose translation failed the identity check.
	Rejected []int `json:"rejected,omitempty"`

	// Stale lists dictionary keys no longer present in the client.
	Stale []int `json:"stale,omitempty"`
}

// NewRunReport returns a report stamped with a fresh run ID.
func NewRunReport(dryRun bool) *RunReport {
	return &RunReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		DryRun:    dryRun,
	}
}

// Clean reports whether the run found nothing needing translator
// attention.
func (r *RunReport) Clean() bool {
	for _, v := range r.Variants {
		if v.Summary.Untranslated > 0 || v.Summary.Rejected > 0 || v.Summary.Stale > 0 {
			return false
		}
	}
	return true
}

// WriteJSON serializes the report to the given path.
func (r *RunReport) WriteJSON(fsys afero.Fs, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return afero.WriteFile(fsys, path, data, 0o644)
}
