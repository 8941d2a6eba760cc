package stringtable

import "sort"

// Element names used by the client string-table format.
const (
	// TagString is the entry element used by regular string tables.
	TagString = "string"
	// TagStringTip is the entry element used by the tip table.
	TagStringTip = "string_tip"

	// RootStrings is the root element of regular string tables.
	RootStrings = "strings"
	// RootStringTips is the root element of the tip table.
	RootStringTips = "string_tips"
)

// Entry is a single client string. ID is the table key; Name is a
// secondary identity check across tables. Optional elements stay nil when
// absent from the file. An explicitly empty element is an empty string,
// which is valid content, not a missing value.
type Entry struct {
	// Tag is the entry's element name (string or string_tip).
	Tag string

	// ID is the unique key within a table.
	ID int

	// Name is the symbolic identifier the client references strings by.
	Name string

	// Body is the display text.
	Body *string

	// MessageType classifies how the client routes the message.
	MessageType *string

	// DisplayType selects the client-side presentation.
	DisplayType *int

	// Ment names the voice-over resource attached to the string.
	Ment *string

	// Rank gates the string by character rank.
	Rank *int
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	c := *e
	c.Body = cloneString(e.Body)
	c.MessageType = cloneString(e.MessageType)
	c.DisplayType = cloneInt(e.DisplayType)
	c.Ment = cloneString(e.Ment)
	c.Rank = cloneInt(e.Rank)
	return &c
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Table is a keyed collection of entries sharing one root element.
type Table struct {
	// Root is the document's root element name.
	Root string

	// Entries maps entry ID to entry.
	Entries map[int]*Entry
}

// NewTable returns an empty table with the given root element name.
func NewTable(root string) *Table {
	return &Table{Root: root, Entries: make(map[int]*Entry)}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.Entries)
}

// IDs returns the entry keys in ascending order. All iteration over a
// table goes through this to keep results independent of map order.
func (t *Table) IDs() []int {
	ids := make([]int, 0, len(t.Entries))
	for id := range t.Entries {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Merge overlays the other table's entries onto this one, replacing
// entries on key clash. Entries are copied, never shared.
func (t *Table) Merge(other *Table) {
	for id, e := range other.Entries {
		t.Entries[id] = e.Clone()
	}
}
