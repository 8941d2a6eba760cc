package stringtable

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"l10n-sync/core/textenc"
)

// Write serializes a table to its on-disk form: UTF-16LE with a BOM, CRLF
// line endings, entries sorted by ID, optional elements emitted only when
// present. The output is byte-stable for a given table, so identical
// inputs always produce identical files.
func Write(fsys afero.Fs, path string, t *Table) error {
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"utf-16\"?>\r\n")
	sb.WriteString("<" + t.Root + ">\r\n")
	for _, id := range t.IDs() {
		e := t.Entries[id]
		sb.WriteString("  <" + e.Tag + ">\r\n")
		sb.WriteString("    <id>" + strconv.Itoa(e.ID) + "</id>\r\n")
		sb.WriteString("    <name>" + e.Name + "</name>\r\n")
		if e.Body != nil {
			sb.WriteString("    <body>" + *e.Body + "</body>\r\n")
		}
		if e.MessageType != nil {
			sb.WriteString("    <message_type>" + *e.MessageType + "</message_type>\r\n")
		}
		if e.DisplayType != nil {
			sb.WriteString("    <display_type>" + strconv.Itoa(*e.DisplayType) + "</display_type>\r\n")
		}
		if e.Ment != nil {
			sb.WriteString("    <ment>" + *e.Ment + "</ment>\r\n")
		}
		if e.Rank != nil {
			sb.WriteString("    <rank>" + strconv.Itoa(*e.Rank) + "</rank>\r\n")
		}
		sb.WriteString("  </" + e.Tag + ">\r\n")
	}
	sb.WriteString("</" + t.Root + ">\r\n")

	encoded, err := textenc.Encode(sb.String())
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	if err := afero.WriteFile(fsys, path, encoded, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
