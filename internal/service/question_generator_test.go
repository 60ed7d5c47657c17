package service

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

func word(w string, group int, def string, syns ...string) *entities.Word {
	return &entities.Word{
		Word:  w,
		Slug:  w,
		Group: group,
		Definitions: []entities.Definition{{
			PartOfSpeech: "adjective",
			Definition:   def,
			Example:      strPtr("An example with " + w + "."),
			Synonyms:     syns,
		}},
	}
}

func testCorpus() []*entities.Word {
	return []*entities.Word{
		word("abate", 1, "to lessen", "wane", "diminish"),
		word("wane", 1, "to decrease", "abate"),
		word("laconic", 1, "using few words", "terse"),
		word("terse", 1, "brief and abrupt", "laconic", "curt"),
		word("ebullient", 2, "full of energy", "buoyant"),
		word("buoyant", 2, "cheerful", "ebullient", "upbeat"),
		word("placate", 2, "to calm", "mollify"),
		word("mollify", 2, "to soothe", "placate"),
		word("lonely", 3, "without company"),
	}
}

func newTestGenerator(seed int64) *QuestionGenerator {
	return NewQuestionGenerator(rand.New(rand.NewSource(seed)))
}

func TestQuestionGenerator_OptionValidity(t *testing.T) {
	corpus := testCorpus()

	for _, qt := range entities.QuizTypes {
		for seed := int64(0); seed < 20; seed++ {
			t.Run(fmt.Sprintf("%s/%d", qt, seed), func(t *testing.T) {
				qs, err := newTestGenerator(seed).Generate(corpus, QuizParams{Groups: []int{1, 2}, Count: 8, Type: qt})
				require.NoError(t, err)
				require.NotEmpty(t, qs)

				for _, q := range qs {
					assert.Contains(t, q.Options, q.Correct)
					assert.Len(t, q.Options, 4)
					assert.GreaterOrEqual(t, q.CorrectIndex(), 0)
				}
			})
		}
	}
}

func TestQuestionGenerator_SynonymSoundness(t *testing.T) {
	corpus := testCorpus()
	byWord := make(map[string]*entities.Word)
	for _, w := range corpus {
		byWord[w.Word] = w
	}

	for seed := int64(0); seed < 30; seed++ {
		qs, err := newTestGenerator(seed).Generate(corpus, QuizParams{Groups: []int{1, 2, 3}, Count: 9, Type: entities.QuizTypeSynonym})
		require.NoError(t, err)

		// lonely has no synonyms and is always dropped.
		assert.Len(t, qs, 8)
		for _, q := range qs {
			w := byWord[q.Prompt]
			require.NotNil(t, w)
			assert.True(t, w.HasSynonym(q.Correct), "%q is not a synonym of %q", q.Correct, q.Prompt)
			for _, o := range q.Options {
				if o != q.Correct {
					assert.False(t, w.HasSynonym(o), "distractor %q belongs to %q", o, q.Prompt)
				}
			}
			assert.Equal(t, "An example with "+w.Word+".", q.Explanation)
		}
	}
}

func TestQuestionGenerator_ReverseAndDefinition(t *testing.T) {
	corpus := testCorpus()
	g := newTestGenerator(1)

	qs, err := g.Generate(corpus, QuizParams{Groups: []int{3}, Count: 1, Type: entities.QuizTypeReverse})
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "without company", qs[0].Prompt)
	assert.Equal(t, "lonely", qs[0].Correct)

	qs, err = g.Generate(corpus, QuizParams{Groups: []int{3}, Count: 1, Type: entities.QuizTypeDefinition})
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "lonely", qs[0].Prompt)
	assert.Equal(t, "without company", qs[0].Correct)
	assert.Equal(t, "An example with lonely.", qs[0].Explanation)
}

func TestQuestionGenerator_SelectionBound(t *testing.T) {
	corpus := testCorpus()
	g := newTestGenerator(7)

	tests := []struct {
		groups []int
		count  int
		want   int
	}{
		{groups: []int{1}, count: 2, want: 2},
		{groups: []int{1}, count: 10, want: 4},
		{groups: []int{1, 2, 3}, count: 9, want: 9},
		{groups: []int{9}, count: 3, want: 0},
		{groups: []int{1}, count: 0, want: 0},
		{groups: nil, count: 3, want: 0},
	}

	for _, tt := range tests {
		selected := g.SelectWords(corpus, tt.groups, tt.count)
		assert.Len(t, selected, tt.want)

		seen := make(map[*entities.Word]bool)
		for _, w := range selected {
			assert.False(t, seen[w], "duplicate %q", w.Word)
			seen[w] = true
			assert.Contains(t, tt.groups, w.Group)
		}
	}
}

func TestQuestionGenerator_TwoWordCorpus(t *testing.T) {
	corpus := []*entities.Word{
		{Word: "ebullient", Slug: "ebullient", Group: 1, Definitions: []entities.Definition{{Definition: "cheerful and full of energy", Synonyms: []string{"buoyant"}}}},
		{Word: "buoyant", Slug: "buoyant", Group: 1, Definitions: []entities.Definition{{Definition: "cheerful", Synonyms: []string{"ebullient"}}}},
	}

	for seed := int64(0); seed < 10; seed++ {
		qs, err := newTestGenerator(seed).Generate(corpus, QuizParams{Groups: []int{1}, Count: 1, Type: entities.QuizTypeSynonym})
		require.NoError(t, err)
		require.Len(t, qs, 1)

		q := qs[0]
		require.Contains(t, []string{"ebullient", "buoyant"}, q.Prompt)
		other := map[string]string{"ebullient": "buoyant", "buoyant": "ebullient"}[q.Prompt]
		assert.Equal(t, other, q.Correct)
		assert.Contains(t, q.Options, q.Correct)
		assert.Less(t, len(q.Options), 4)
		assert.Empty(t, q.Explanation)
	}
}

func TestQuestionGenerator_UnknownType(t *testing.T) {
	_, err := newTestGenerator(1).Generate(testCorpus(), QuizParams{Groups: []int{1}, Count: 1, Type: "antonym"})
	assert.ErrorIs(t, err, entities.ErrUnknownQuizType)
}

func TestQuestionGenerator_Deterministic(t *testing.T) {
	p := QuizParams{Groups: []int{1, 2}, Count: 5, Type: entities.QuizTypeDefinition}

	a, err := newTestGenerator(42).Generate(testCorpus(), p)
	require.NoError(t, err)
	b, err := newTestGenerator(42).Generate(testCorpus(), p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
