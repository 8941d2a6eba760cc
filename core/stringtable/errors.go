package stringtable

import "fmt"

// ParseError reports a malformed or mis-encoded string-table file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Msg describes the failure, naming the offending key where known.
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Path, e.Msg)
}

// DuplicateKeyError reports a key defined twice within one table.
// Ambiguous translation ownership is never resolved silently.
type DuplicateKeyError struct {
	// Path is the file containing the duplicate.
	Path string
	// ID is the duplicated key.
	ID int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("parse %s: duplicate key %d", e.Path, e.ID)
}

// WriteError reports an I/O or encoding failure while serializing a table.
type WriteError struct {
	// Path is the file that failed to write.
	Path string
	// Err is the underlying failure.
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
