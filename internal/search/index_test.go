package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

func testWords() []*entities.Word {
	return []*entities.Word{
		{Word: "ebullient", Slug: "ebullient", Group: 1, Definitions: []entities.Definition{{
			Definition: "cheerful and full of energy",
			Example:    strPtr("The ebullient host greeted every guest."),
			Synonyms:   []string{"exuberant", "buoyant"},
		}}},
		{Word: "laconic", Slug: "laconic", Group: 1, Definitions: []entities.Definition{{
			Definition: "using very few words",
			Synonyms:   []string{"terse"},
		}}},
		{Word: "terse", Slug: "terse", Group: 2, Definitions: []entities.Definition{{
			Definition: "sparing in the use of words; abrupt",
			Synonyms:   []string{"laconic"},
		}}},
	}
}

func TestIndex_ExactWord(t *testing.T) {
	ix := NewIndex(testWords(), DefaultOptions)

	res := ix.Search("Laconic")
	require.NotEmpty(t, res)
	assert.Equal(t, "laconic", res[0].Word.Word)
	assert.Zero(t, res[0].Score)
	assert.Equal(t, Match{Field: FieldWord, Value: "laconic", Start: 0, End: 7}, res[0].Matches[0])

	// terse lists laconic as a synonym.
	require.Len(t, res, 2)
	assert.Equal(t, "terse", res[1].Word.Word)
	assert.Equal(t, FieldSynonym, res[1].Matches[0].Field)
}

func TestIndex_Typo(t *testing.T) {
	ix := NewIndex(testWords(), DefaultOptions)

	res := ix.Search("ebulient")
	require.NotEmpty(t, res)
	assert.Equal(t, "ebullient", res[0].Word.Word)
	assert.Greater(t, res[0].Score, 0.0)
	assert.LessOrEqual(t, res[0].Score, DefaultOptions.Threshold)
}

func TestIndex_MatchAnywhereInDefinition(t *testing.T) {
	ix := NewIndex(testWords(), DefaultOptions)

	res := ix.Search("energy")
	require.Len(t, res, 1)
	m := res[0].Matches[0]
	assert.Equal(t, FieldDefinition, m.Field)
	assert.Equal(t, "energy", m.Value[m.Start:m.End])
}

func TestIndex_ExampleField(t *testing.T) {
	ix := NewIndex(testWords(), DefaultOptions)

	res := ix.Search("greeted")
	require.Len(t, res, 1)
	assert.Equal(t, FieldExample, res[0].Matches[0].Field)
}

func TestIndex_ShortAndUnrelatedQueries(t *testing.T) {
	ix := NewIndex(testWords(), DefaultOptions)

	assert.Empty(t, ix.Search("e"))
	assert.Empty(t, ix.Search("   "))
	assert.Empty(t, ix.Search("xylophone"))
}

func TestByteSpan_Unicode(t *testing.T) {
	s := "naïve café"
	start, end := byteSpan(s, 6, 10)
	assert.Equal(t, "café", s[start:end])
}

func TestParts(t *testing.T) {
	assert.Equal(t, []string{"ab", "ba", "at", "te", "to", "of"}, parts("Abate, to of"))
}
