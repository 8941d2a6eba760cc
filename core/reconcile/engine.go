package reconcile

import (
	"fmt"

	"l10n-sync/core/stringtable"
)

// Reconcile merges a translator dictionary into the authoritative source
// table. The output key set always equals the source key set: a key with
// an accepted translation takes the dictionary entry, any other source key
// falls back to the source entry and joins the pending set, and dictionary
// keys absent from the source are reported stale and never emitted.
//
// The result is deterministic: iteration is over sorted keys, so identical
// inputs always yield identical plans.
func Reconcile(source, dictionary *stringtable.Table, opts Options) *Plan {
	plan := &Plan{
		Output:  stringtable.NewTable(source.Root),
		Pending: stringtable.NewTable(source.Root),
	}
	plan.Summary.Total = source.Len()

	for _, id := range source.IDs() {
		src := source.Entries[id]

		dict, ok := dictionary.Entries[id]
		if !ok {
			plan.fallback(src, "missing translation")
			plan.Untranslated = append(plan.Untranslated, id)
			plan.Summary.Untranslated++
			continue
		}

		// Name is the client's symbolic identity; a disagreement means
		// the translation belongs to a different string.
		if dict.Name != src.Name {
			plan.fallback(src, fmt.Sprintf("name mismatch: source %q, dictionary %q", src.Name, dict.Name))
			plan.Rejected = append(plan.Rejected, id)
			plan.Summary.Rejected++
			continue
		}

		out := dict.Clone()
		out.Tag = src.Tag
		if opts.RepairMetadata {
			plan.repair(src, out)
		}
		if opts.CheckExpressions {
			plan.checkExpressions(src, out)
		}
		plan.Output.Entries[id] = out
		plan.Summary.Translated++
	}

	for _, id := range dictionary.IDs() {
		if _, ok := source.Entries[id]; ok {
			continue
		}
		plan.Stale = append(plan.Stale, id)
		plan.Summary.Stale++
		plan.Actions = append(plan.Actions, Action{
			Type:   ActionDropStale,
			ID:     id,
			Name:   dictionary.Entries[id].Name,
			Reason: "key no longer exists in source",
		})
	}

	return plan
}

// fallback emits the source entry unchanged and queues it for translators.
func (p *Plan) fallback(src *stringtable.Entry, reason string) {
	p.Output.Entries[src.ID] = src.Clone()
	p.Pending.Entries[src.ID] = src.Clone()
	p.Actions = append(p.Actions, Action{
		Type:   ActionFallback,
		ID:     src.ID,
		Name:   src.Name,
		Reason: reason,
	})
}
