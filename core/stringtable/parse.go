package stringtable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"l10n-sync/core/textenc"
)

// element is a minimal XML node. The client files carry raw ampersands and
// game markup inside text nodes, which encoding/xml rejects, so documents
// are scanned with a character state machine instead.
type element struct {
	name     string
	text     string
	children []*element
}

func (el *element) find(name string) *element {
	for _, c := range el.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

type parserState int

const (
	stateDocumentStart parserState = iota
	stateDeclOpening
	stateDecl
	stateDeclClosing
	stateBeforeRoot
	stateUnknownTag
	stateBeginTag
	stateBeginTagAttrs
	stateEndTag
	stateText
)

// parseDocument scans a decoded document and returns its root element.
// Attributes are skipped; the client format does not use them.
func parseDocument(data string) (*element, error) {
	state := stateDocumentStart
	var (
		stack     []*element
		current   *element
		tagName   []rune
		text      []rune
		textStack [][]rune
	)

	openTag := func() {
		textStack = append(textStack, text)
		text = nil
		if current != nil {
			stack = append(stack, current)
		}
		current = &element{name: string(tagName)}
		tagName = nil
		state = stateText
	}

	for _, c := range data {
		switch state {
		case stateDocumentStart:
			if c != '<' {
				return nil, fmt.Errorf("expected XML declaration opening '<'")
			}
			state = stateDeclOpening

		case stateDeclOpening:
			if c != '?' {
				return nil, fmt.Errorf("expected XML declaration opening '?'")
			}
			state = stateDecl

		case stateDecl:
			if c == '?' {
				state = stateDeclClosing
			}

		case stateDeclClosing:
			if c == '>' {
				state = stateBeforeRoot
			} else {
				state = stateDecl
			}

		case stateBeforeRoot:
			if c == '<' {
				state = stateUnknownTag
			}

		case stateUnknownTag:
			if c == '/' {
				state = stateEndTag
			} else {
				tagName = append(tagName, c)
				state = stateBeginTag
			}

		case stateBeginTag:
			switch c {
			case '>':
				openTag()
			case ' ':
				state = stateBeginTagAttrs
			default:
				tagName = append(tagName, c)
			}

		case stateBeginTagAttrs:
			if c == '>' {
				openTag()
			}

		case stateEndTag:
			if c == '>' {
				name := string(tagName)
				if current == nil || name != current.name {
					return nil, fmt.Errorf("mismatching closing tag </%s>", name)
				}
				tagName = nil

				current.text = string(text)
				text = textStack[len(textStack)-1]
				textStack = textStack[:len(textStack)-1]

				if len(stack) == 0 {
					return current, nil
				}
				parent := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				parent.children = append(parent.children, current)
				current = parent
				state = stateText
			} else {
				tagName = append(tagName, c)
			}

		case stateText:
			if c == '<' {
				state = stateUnknownTag
			} else {
				text = append(text, c)
			}
		}
	}

	return nil, fmt.Errorf("unexpected end of document")
}

// validChildren is the set of elements allowed inside a string entry.
var validChildren = map[string]bool{
	"id":           true,
	"name":         true,
	"body":         true,
	"message_type": true,
	"display_type": true,
	"ment":         true,
	"rank":         true,
}

// Load reads and parses an encoded string-table file.
func Load(fsys afero.Fs, path string) (*Table, error) {
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: err.Error()}
	}
	return Parse(path, raw)
}

// LoadOptional behaves like Load, except a missing file yields an empty
// table with the given root. Translator patch files may not exist yet.
func LoadOptional(fsys afero.Fs, path, root string) (*Table, error) {
	ok, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: err.Error()}
	}
	if !ok {
		return NewTable(root), nil
	}
	return Load(fsys, path)
}

// Parse decodes and parses raw file bytes into a table. The path is used
// for error reporting only.
func Parse(path string, raw []byte) (*Table, error) {
	data, err := textenc.Decode(raw)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: err.Error()}
	}

	root, err := parseDocument(data)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: err.Error()}
	}

	table := NewTable(root.name)
	for _, el := range root.children {
		entry, err := entryFromElement(path, el)
		if err != nil {
			return nil, err
		}
		if _, exists := table.Entries[entry.ID]; exists {
			return nil, &DuplicateKeyError{Path: path, ID: entry.ID}
		}
		table.Entries[entry.ID] = entry
	}
	return table, nil
}

func entryFromElement(path string, el *element) (*Entry, error) {
	if el.name != TagString && el.name != TagStringTip {
		return nil, &ParseError{Path: path, Msg: fmt.Sprintf("expected <string> or <string_tip> element, got <%s>", el.name)}
	}
	for _, child := range el.children {
		if !validChildren[child.name] {
			return nil, &ParseError{Path: path, Msg: fmt.Sprintf("unknown element <%s>", child.name)}
		}
	}

	entry := &Entry{Tag: el.name}

	idEl := el.find("id")
	if idEl == nil {
		return nil, &ParseError{Path: path, Msg: "<id> element not found"}
	}
	id, err := strconv.Atoi(strings.TrimSpace(idEl.text))
	if err != nil {
		return nil, &ParseError{Path: path, Msg: fmt.Sprintf("invalid <id> value %q", idEl.text)}
	}
	entry.ID = id

	nameEl := el.find("name")
	if nameEl == nil {
		return nil, &ParseError{Path: path, Msg: fmt.Sprintf("<name> element not found for id %d", id)}
	}
	entry.Name = nameEl.text

	if b := el.find("body"); b != nil {
		entry.Body = cloneString(&b.text)
	}
	if m := el.find("message_type"); m != nil {
		entry.MessageType = cloneString(&m.text)
	}
	if d := el.find("display_type"); d != nil {
		v, err := strconv.Atoi(strings.TrimSpace(d.text))
		if err != nil {
			return nil, &ParseError{Path: path, Msg: fmt.Sprintf("invalid <display_type> value %q for id %d", d.text, id)}
		}
		entry.DisplayType = &v
	}
	if m := el.find("ment"); m != nil {
		entry.Ment = cloneString(&m.text)
	}
	if r := el.find("rank"); r != nil {
		v, err := strconv.Atoi(strings.TrimSpace(r.text))
		if err != nil {
			return nil, &ParseError{Path: path, Msg: fmt.Sprintf("invalid <rank> value %q for id %d", r.text, id)}
		}
		entry.Rank = &v
	}
	return entry, nil
}
