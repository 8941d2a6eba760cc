// Package pack builds the installable translation pack.
//
// A run walks the manifest of client string-table files and, per variant,
// layers the dictionary (reference, then translator patch, then variant
// overlay), reconciles it against the client tables, writes the merged
// output, rewrites the patch with whatever still needs translator
// attention, and copies the static asset directories. A JSON run report
// lands in the output root for CI to archive.
//
// The output tree is recreated from scratch on every non-dry run and any
// failure aborts the whole run, so a broken input can never produce a
// shippable half-pack.
//
// All filesystem access goes through afero; tests run the full builder
// against an in-memory filesystem.
package pack
