package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

const testCorpusJSON = `[
  {"word": "terse", "slug": "terse", "group": 1, "definitions": [
    {"part_of_speech": "adjective", "definition": "sparing in the use of words", "example": "a terse reply", "synonyms": ["laconic", "concise"]}
  ]},
  {"word": "laconic", "slug": "laconic", "group": 1, "definitions": [
    {"part_of_speech": "adjective", "definition": "using very few words", "example": null, "synonyms": ["terse"]}
  ]},
  {"word": "abate", "slug": "abate", "group": 2, "definitions": [
    {"part_of_speech": "verb", "definition": "to become less intense", "example": null, "synonyms": ["diminish"]}
  ]},
  {"word": "diminish", "slug": "diminish", "group": 2, "definitions": [
    {"part_of_speech": "verb", "definition": "to make or become less", "example": null, "synonyms": ["abate", "wane"]}
  ]},
  {"word": "broken", "slug": "broken", "group": 1, "definitions": []}
]`

func writeCorpus(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(testCorpusJSON), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", "--source", writeCorpus(t))
	require.NoError(t, err)

	assert.Contains(t, out, "group 1: 2 words")
	assert.Contains(t, out, "group 2: 2 words")
	assert.Contains(t, out, "total: 4 words")
	assert.Contains(t, out, "quarantined: 1")
	assert.Contains(t, out, "record 4 (broken): no definitions")
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := execute(t, "validate", "--source", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestQuiz(t *testing.T) {
	out, err := execute(t, "quiz", "--source", writeCorpus(t), "--groups", "1,2", "--count", "4", "--type", "reverse", "--seed", "7")
	require.NoError(t, err)

	var questions []entities.QuizQuestion
	require.NoError(t, json.Unmarshal([]byte(out), &questions))
	require.Len(t, questions, 4)
	for _, q := range questions {
		assert.Contains(t, q.Options, q.Correct)
		assert.Len(t, q.Options, 4)
	}
}

func TestQuiz_Validation(t *testing.T) {
	source := writeCorpus(t)

	_, err := execute(t, "quiz", "--source", source, "--groups", "1", "--type", "antonym")
	assert.ErrorIs(t, err, entities.ErrUnknownQuizType)

	_, err = execute(t, "quiz", "--source", source)
	assert.Error(t, err)
}

func TestPairs(t *testing.T) {
	out, err := execute(t, "pairs", "--source", writeCorpus(t), "--groups", "1,2", "--grid", "4x3", "--seed", "3")
	require.NoError(t, err)

	var tiles []entities.MatchTile
	require.NoError(t, json.Unmarshal([]byte(out), &tiles))
	require.Len(t, tiles, 4)

	words := make(map[string]string, len(tiles))
	for _, tile := range tiles {
		words[tile.Word] = tile.Pair
	}
	assert.Equal(t, "laconic", words["terse"])
	assert.Equal(t, "terse", words["laconic"])
	assert.Equal(t, "diminish", words["abate"])
	assert.Equal(t, "abate", words["diminish"])
}

func TestPairs_InvalidGrid(t *testing.T) {
	_, err := execute(t, "pairs", "--source", writeCorpus(t), "--groups", "1", "--grid", "9x9")
	assert.Error(t, err)
}
