// Package reconcile merges translator dictionaries into the game client's
// authoritative string tables.
//
// The source table decides which keys exist; the dictionary decides the
// translated text of the keys it covers. Reconcile produces a Plan: the
// output table (exactly the source key set, translation winning where one
// is accepted), the pending table (entries translators still need to
// handle), the stale key list, and a typed action log with aggregate
// counts.
//
// # Invariants
//
//   - Output key set == source key set, always. No additions, no
//     omissions.
//   - A dictionary key absent from the source is stale: reported,
//     excluded, never silently emitted.
//   - An explicitly empty translation is valid content, not a missing
//     one.
//   - Deterministic: identical inputs yield identical plans regardless of
//     map iteration order.
//
// Reconcile is pure. It reads nothing from disk and mutates neither input
// table; applying the plan (writing output, rewriting the translator
// patch) is the pack builder's job.
package reconcile
