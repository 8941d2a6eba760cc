package reconcile

import (
	"fmt"
	"regexp"
	"sort"

	"l10n-sync/core/stringtable"
)

// expressionRE matches the client's placeholder expressions: bracketed
// [%...] forms and positional %0-%9 substitutions.
var expressionRE = regexp.MustCompile(`\[%[^%\]].*?\]|%[0-9]`)

// repair aligns metadata fields of an accepted translation with the
// source. Only fields the client interprets mechanically are touched;
// translated text is the dictionary's to own.
func (p *Plan) repair(src, out *stringtable.Entry) {
	if !strPtrEqual(src.MessageType, out.MessageType) {
		out.MessageType = copyStr(src.MessageType)
		p.addRepair(src, "message_type")
	}
	if !intPtrEqual(src.DisplayType, out.DisplayType) {
		out.DisplayType = copyInt(src.DisplayType)
		p.addRepair(src, "display_type")
	}
	if !strPtrEqual(src.Ment, out.Ment) {
		out.Ment = copyStr(src.Ment)
		p.addRepair(src, "ment")
	}
	if !intPtrEqual(src.Rank, out.Rank) {
		out.Rank = copyInt(src.Rank)
		p.addRepair(src, "rank")
	}

	// A translated body with no source counterpart is text the client
	// never displays; drop it so the output mirrors the source shape.
	if src.Body == nil && out.Body != nil && *out.Body != "" {
		out.Body = nil
		p.addRepair(src, "body")
	}
}

// checkExpressions warns when placeholder expressions differ between the
// source and translated bodies. A dropped placeholder garbles client
// substitution, so these are left for translators to resolve by hand.
func (p *Plan) checkExpressions(src, out *stringtable.Entry) {
	switch {
	case src.Body != nil && *src.Body != "" && out.Body == nil:
		p.addWarn(src, "body", "source body exists but translation has none")
	case src.Body != nil && out.Body != nil:
		se := expressionSet(*src.Body)
		oe := expressionSet(*out.Body)
		if !equalStrings(se, oe) {
			p.addWarn(src, "body", fmt.Sprintf("placeholder mismatch: source %v, translation %v", se, oe))
		}
	}
}

func (p *Plan) addRepair(src *stringtable.Entry, field string) {
	p.Summary.Repairs++
	p.Actions = append(p.Actions, Action{
		Type:   ActionRepair,
		ID:     src.ID,
		Name:   src.Name,
		Field:  field,
		Reason: "source value differs",
	})
}

func (p *Plan) addWarn(src *stringtable.Entry, field, reason string) {
	p.Summary.Warnings++
	p.Actions = append(p.Actions, Action{
		Type:   ActionWarn,
		ID:     src.ID,
		Name:   src.Name,
		Field:  field,
		Reason: reason,
	})
}

// expressionSet extracts the unique placeholder expressions of a body,
// sorted for stable comparison and reporting.
func expressionSet(body string) []string {
	seen := make(map[string]struct{})
	for _, m := range expressionRE.FindAllString(body, -1) {
		seen[m] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func copyStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
