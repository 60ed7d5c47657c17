// Package search implements fuzzy lookup over the vocabulary corpus.
//
// Candidate fields are found through a bigram index and then ranked by
// normalized Levenshtein distance between the query and the closest window
// of the field text. A score of 0 is a perfect match; results above the
// threshold are dropped.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

// Field names a searchable part of a word.
type Field string

const (
	FieldWord       Field = "word"
	FieldDefinition Field = "definition"
	FieldExample    Field = "example"
	FieldSynonym    Field = "synonym"
)

const gramLength = 2

// Options tune matching.
type Options struct {
	Threshold      float64 // maximum accepted score, 0..1
	MinMatchLength int     // queries shorter than this return nothing
}

// DefaultOptions mirror the settings the word browser has always used.
var DefaultOptions = Options{Threshold: 0.4, MinMatchLength: 2}

// Match is the best matching span inside one field value.
// Start and End are byte offsets into Value.
type Match struct {
	Field Field
	Value string
	Start int
	End   int
	Score float64
}

// Result is a matched word with its score and the fields that matched.
type Result struct {
	Word    *entities.Word
	Score   float64
	Matches []Match
}

type entry struct {
	doc   int
	field Field
	value string
	lower []rune
}

// Index is an immutable fuzzy index. It is safe for concurrent use.
type Index struct {
	opts    Options
	words   []*entities.Word
	entries []entry
	grams   map[string][]int // gram -> entry indexes
}

// NewIndex indexes the word, definitions, examples and synonyms of every word.
func NewIndex(words []*entities.Word, opts Options) *Index {
	if opts.MinMatchLength < 1 {
		opts.MinMatchLength = 1
	}

	ix := &Index{
		opts:  opts,
		words: words,
		grams: make(map[string][]int),
	}

	for doc, w := range words {
		ix.add(doc, FieldWord, w.Word)
		for _, d := range w.Definitions {
			ix.add(doc, FieldDefinition, d.Definition)
			if ex := d.ExampleText(); ex != "" {
				ix.add(doc, FieldExample, ex)
			}
			for _, s := range d.Synonyms {
				ix.add(doc, FieldSynonym, s)
			}
		}
	}

	return ix
}

func (ix *Index) add(doc int, field Field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}

	id := len(ix.entries)
	ix.entries = append(ix.entries, entry{doc: doc, field: field, value: value, lower: lowerRunes(value)})

	seen := make(map[string]struct{})
	for _, g := range parts(value) {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		ix.grams[g] = append(ix.grams[g], id)
	}
}

// Search returns every word matching q, best first.
// Ties are broken by headword.
func (ix *Index) Search(q string) []Result {
	query := lowerRunes(strings.TrimSpace(q))
	if len(query) < ix.opts.MinMatchLength {
		return nil
	}

	hits := make(map[int]struct{})
	for _, g := range parts(string(query)) {
		for _, id := range ix.grams[g] {
			hits[id] = struct{}{}
		}
	}

	byDoc := make(map[int]*Result)
	for id := range hits {
		e := ix.entries[id]
		score, start, end := bestWindow(query, e.lower)
		if score > ix.opts.Threshold {
			continue
		}

		bs, be := byteSpan(e.value, start, end)
		m := Match{Field: e.field, Value: e.value, Start: bs, End: be, Score: score}

		r, ok := byDoc[e.doc]
		if !ok {
			r = &Result{Word: ix.words[e.doc], Score: score}
			byDoc[e.doc] = r
		}
		if score < r.Score {
			r.Score = score
		}
		r.Matches = append(r.Matches, m)
	}

	out := make([]Result, 0, len(byDoc))
	for _, r := range byDoc {
		sortMatches(r.Matches)
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Word.Word < out[j].Word.Word
	})

	return out
}

func sortMatches(ms []Match) {
	order := map[Field]int{FieldWord: 0, FieldSynonym: 1, FieldDefinition: 2, FieldExample: 3}
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].Score != ms[j].Score {
			return ms[i].Score < ms[j].Score
		}
		if order[ms[i].Field] != order[ms[j].Field] {
			return order[ms[i].Field] < order[ms[j].Field]
		}
		return ms[i].Start < ms[j].Start
	})
}

// bestWindow finds the substring of text closest to q. Location in the text
// does not affect the score. Returned offsets are rune indexes.
func bestWindow(q, text []rune) (float64, int, int) {
	if idx := indexRunes(text, q); idx >= 0 {
		return 0, idx, idx + len(q)
	}

	qs := string(q)
	best, bestStart, bestEnd := 1.0, 0, 0
	for size := len(q) - 1; size <= len(q)+1; size++ {
		if size < 1 {
			continue
		}
		if size > len(text) {
			size = len(text)
		}
		for i := 0; i+size <= len(text); i++ {
			d := levenshtein.ComputeDistance(qs, string(text[i:i+size]))
			score := float64(d) / float64(len(q))
			if score < best {
				best, bestStart, bestEnd = score, i, i+size
			}
		}
		if size == len(text) {
			break
		}
	}
	return best, bestStart, bestEnd
}

func indexRunes(text, q []rune) int {
	for i := 0; i+len(q) <= len(text); i++ {
		match := true
		for j := range q {
			if text[i+j] != q[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// byteSpan converts a rune span of s into byte offsets.
func byteSpan(s string, start, end int) (int, int) {
	bs, be := len(s), len(s)
	n := 0
	for i := range s {
		if n == start {
			bs = i
		}
		if n == end {
			be = i
			break
		}
		n++
	}
	return bs, be
}

func lowerRunes(s string) []rune {
	r := []rune(s)
	for i := range r {
		r[i] = unicode.ToLower(r[i])
	}
	return r
}

// parts splits s into lower-cased bigrams of its words. Words shorter than
// a bigram are kept whole.
func parts(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := make([]string, 0, len(s))
	for _, f := range fields {
		v := []rune(f)
		if len(v) <= gramLength {
			out = append(out, f)
			continue
		}
		for j := 0; j+gramLength <= len(v); j++ {
			out = append(out, string(v[j:j+gramLength]))
		}
	}
	return out
}
