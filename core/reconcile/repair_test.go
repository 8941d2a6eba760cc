package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l10n-sync/core/stringtable"
)

func entry(id int, name string) *stringtable.Entry {
	return &stringtable.Entry{Tag: stringtable.TagString, ID: id, Name: name}
}

func singleTable(e *stringtable.Entry) *stringtable.Table {
	t := stringtable.NewTable(stringtable.RootStrings)
	t.Entries[e.ID] = e
	return t
}

func TestRepair_MetadataFields(t *testing.T) {
	src := entry(1, "STR_A")
	src.Body = strPtr("Hello")
	src.MessageType = strPtr("SYS")
	src.DisplayType = intPtr(2)
	src.Ment = strPtr("voice_a")
	src.Rank = intPtr(5)

	dict := entry(1, "STR_A")
	dict.Body = strPtr("Bonjour")
	dict.MessageType = strPtr("CHAT")
	dict.DisplayType = intPtr(1)
	dict.Ment = strPtr("voice_b")
	dict.Rank = nil

	plan := Reconcile(singleTable(src), singleTable(dict), Options{RepairMetadata: true})

	out := plan.Output.Entries[1]
	require.NotNil(t, out)

	// Metadata follows the source; text stays translated.
	assert.Equal(t, "Bonjour", *out.Body)
	assert.Equal(t, "SYS", *out.MessageType)
	assert.Equal(t, 2, *out.DisplayType)
	assert.Equal(t, "voice_a", *out.Ment)
	assert.Equal(t, 5, *out.Rank)

	assert.Equal(t, 4, plan.Summary.Repairs)

	fields := make(map[string]bool)
	for _, a := range plan.Actions {
		if a.Type == ActionRepair {
			fields[a.Field] = true
		}
	}
	assert.Equal(t, map[string]bool{
		"message_type": true,
		"display_type": true,
		"ment":         true,
		"rank":         true,
	}, fields)
}

func TestRepair_NoChangesWhenAligned(t *testing.T) {
	src := entry(1, "STR_A")
	src.Body = strPtr("Hello")
	src.MessageType = strPtr("SYS")

	dict := entry(1, "STR_A")
	dict.Body = strPtr("Bonjour")
	dict.MessageType = strPtr("SYS")

	plan := Reconcile(singleTable(src), singleTable(dict), Options{RepairMetadata: true})

	assert.Equal(t, 0, plan.Summary.Repairs)
	assert.Empty(t, plan.Actions)
}

func TestRepair_TranslatedBodyWithoutSourceBodyDropped(t *testing.T) {
	src := entry(1, "STR_A") // no body at all

	dict := entry(1, "STR_A")
	dict.Body = strPtr("phantom text")

	plan := Reconcile(singleTable(src), singleTable(dict), Options{RepairMetadata: true})

	assert.Nil(t, plan.Output.Entries[1].Body)
	assert.Equal(t, 1, plan.Summary.Repairs)
}

func TestRepair_EmptyTranslatedBodyKeptWhenSourceHasNone(t *testing.T) {
	src := entry(1, "STR_A")

	dict := entry(1, "STR_A")
	dict.Body = strPtr("")

	plan := Reconcile(singleTable(src), singleTable(dict), Options{RepairMetadata: true})

	// An explicitly empty body is not phantom text; leave it alone.
	require.NotNil(t, plan.Output.Entries[1].Body)
	assert.Equal(t, 0, plan.Summary.Repairs)
}

func TestCheckExpressions_PlaceholderMismatch(t *testing.T) {
	src := entry(1, "STR_A")
	src.Body = strPtr("You gained %1 from [%itemname].")

	dict := entry(1, "STR_A")
	dict.Body = strPtr("Vous avez gagné %1.") // [%itemname] dropped

	plan := Reconcile(singleTable(src), singleTable(dict), Options{CheckExpressions: true})

	assert.Equal(t, 1, plan.Summary.Warnings)
	require.Len(t, plan.Actions, 1)
	assert.Equal(t, ActionWarn, plan.Actions[0].Type)
	assert.Equal(t, "body", plan.Actions[0].Field)

	// The translation is kept as-is; warnings never repair text.
	assert.Equal(t, *dict.Body, *plan.Output.Entries[1].Body)
}

func TestCheckExpressions_MatchingPlaceholders(t *testing.T) {
	src := entry(1, "STR_A")
	src.Body = strPtr("%0 hits [%target] for %1.")

	dict := entry(1, "STR_A")
	dict.Body = strPtr("[%target] reçoit %1 de %0.") // reordered, same set

	plan := Reconcile(singleTable(src), singleTable(dict), Options{CheckExpressions: true})

	assert.Equal(t, 0, plan.Summary.Warnings)
}

func TestCheckExpressions_MissingTranslationBody(t *testing.T) {
	src := entry(1, "STR_A")
	src.Body = strPtr("Some text")

	dict := entry(1, "STR_A") // no body

	plan := Reconcile(singleTable(src), singleTable(dict), Options{CheckExpressions: true})

	assert.Equal(t, 1, plan.Summary.Warnings)
}

func TestExpressionSet(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"none", "plain text", []string{}},
		{"positional", "%1 and %2 and %1", []string{"%1", "%2"}},
		{"bracketed", "[%username] meets [%npcname]", []string{"[%npcname]", "[%username]"}},
		{"mixed", "%0: [%quest]", []string{"%0", "[%quest]"}},
		{"literal percent", "100% done", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expressionSet(tt.body))
		})
	}
}

func TestSummary_Add(t *testing.T) {
	total := Summary{}
	total.Add(Summary{Total: 2, Translated: 1, Untranslated: 1, Repairs: 3})
	total.Add(Summary{Total: 1, Rejected: 1, Stale: 2, Warnings: 1})

	assert.Equal(t, Summary{
		Total:        3,
		Translated:   1,
		Untranslated: 1,
		Rejected:     1,
		Stale:        2,
		Repairs:      3,
		Warnings:     1,
	}, total)
}
