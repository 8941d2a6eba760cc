// Package stringtable models the game client's string-table files.
//
// A string table is a flat, keyed collection of localized strings stored
// as UTF-16 XML. Keys (<id>) are unique within a table; a duplicate is a
// hard DuplicateKeyError because two owners for one translation cannot be
// resolved silently. Load and Write are each other's inverse: writing a
// loaded table and loading it again reproduces the same bytes, which keeps
// generated output diff-friendly across runs.
//
// All file access goes through afero so the package works unchanged
// against an in-memory filesystem in tests.
package stringtable
