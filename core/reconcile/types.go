package reconcile

import "l10n-sync/core/stringtable"

// ActionType identifies a planned reconciliation action.
type ActionType string

const (
	// ActionFallback copies the source entry into the output and pending
	// set because no usable translation exists for its key.
	ActionFallback ActionType = "fallback"

	// ActionDropStale excludes a dictionary entry whose key no longer
	// exists in the source.
	ActionDropStale ActionType = "drop_stale"

	// ActionRepair overwrites a metadata field of an accepted translation
	// with the source's value.
	ActionRepair ActionType = "repair"

	// ActionWarn flags a suspicious translation without changing it.
	ActionWarn ActionType = "warn"
)

// Action records one planned change or finding.
type Action struct {
	// Type specifies the action taken.
	Type ActionType `json:"type"`

	// ID is the entry key.
	ID int `json:"id"`

	// Name is the entry's symbolic name.
	Name string `json:"name"`

	// Field names the affected element for repairs and warnings.
	Field string `json:"field,omitempty"`

	// Reason explains why this action was planned.
	Reason string `json:"reason"`
}

// Summary provides aggregate counts for a reconciliation plan.
type Summary struct {
	// Total is the number of keys in the source table.
	Total int `json:"total"`

	// Translated counts keys covered by an accepted translation.
	Translated int `json:"translated"`

	// Untranslated counts keys with no dictionary entry.
	Untranslated int `json:"untranslated"`

	// Rejected counts keys whose translation failed the identity check.
	Rejected int `json:"rejected"`

	// Stale counts dictionary keys absent from the source.
	Stale int `json:"stale"`

	// Repairs counts metadata fields overwritten from the source.
	Repairs int `json:"repairs"`

	// Warnings counts findings left for translators to resolve by hand.
	Warnings int `json:"warnings"`
}

// Add accumulates another summary's counters.
func (s *Summary) Add(other Summary) {
	s.Total += other.Total
	s.Translated += other.Translated
	s.Untranslated += other.Untranslated
	s.Rejected += other.Rejected
	s.Stale += other.Stale
	s.Repairs += other.Repairs
	s.Warnings += other.Warnings
}

// Options control optional reconciliation behavior.
type Options struct {
	// RepairMetadata overwrites metadata fields of accepted translations
	// with the source's values when they disagree. Translated text is
	// never repaired.
	RepairMetadata bool

	// CheckExpressions compares placeholder expressions between source
	// and translated bodies and warns on disagreement.
	CheckExpressions bool
}

// Plan is the complete result of reconciling one table pair.
type Plan struct {
	// Output holds exactly the source key set with translations applied.
	// This is the table the client loads.
	Output *stringtable.Table

	// Pending holds source entries needing translator attention:
	// untranslated keys plus rejected translations.
	Pending *stringtable.Table

	// Untranslated lists source keys with no dictionary entry, ascending.
	Untranslated []int

	// Rejected lists keys whose translation failed the identity check,
	// ascending.
	Rejected []int

	// Stale lists dictionary keys absent from the source, ascending.
	// Stale entries are reported and never emitted.
	Stale []int

	// Actions records every planned change and finding.
	Actions []Action

	// Summary provides aggregate counts.
	Summary Summary
}
