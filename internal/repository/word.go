package repository

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

var (
	ErrWordNotFound  = errors.New("word not found")
	ErrGroupNotFound = errors.New("group not found")
	ErrEmptyCorpus   = errors.New("vocabulary corpus is empty")
)

// WordRepository provides read access to the vocabulary corpus.
// The corpus is loaded once and never modified afterwards.
type WordRepository struct {
	words       []*entities.Word // input order
	bySlug      map[string]*entities.Word
	byWord      map[string]*entities.Word // lower-cased headword
	groups      []entities.WordGroup
	quarantined []RecordError
}

// NewWordRepository indexes already validated words.
func NewWordRepository(words []*entities.Word, quarantined []RecordError) (*WordRepository, error) {
	if len(words) == 0 {
		return nil, ErrEmptyCorpus
	}

	r := &WordRepository{
		words:       words,
		bySlug:      make(map[string]*entities.Word, len(words)),
		byWord:      make(map[string]*entities.Word, len(words)),
		quarantined: quarantined,
	}

	buckets := make(map[int][]*entities.Word)
	for _, w := range words {
		r.bySlug[w.Slug] = w
		key := strings.ToLower(w.Word)
		if _, ok := r.byWord[key]; !ok {
			r.byWord[key] = w
		}
		buckets[w.Group] = append(buckets[w.Group], w)
	}

	coll := collate.New(language.English, collate.IgnoreCase)
	for g, ws := range buckets {
		sorted := append([]*entities.Word(nil), ws...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return coll.CompareString(sorted[i].Word, sorted[j].Word) < 0
		})
		r.groups = append(r.groups, entities.WordGroup{Group: g, Words: sorted})
	}
	sort.Slice(r.groups, func(i, j int) bool { return r.groups[i].Group < r.groups[j].Group })

	return r, nil
}

// GetAll returns every word in corpus order.
func (r *WordRepository) GetAll() []*entities.Word {
	return r.words
}

// GetBySlug returns the word with the given slug.
func (r *WordRepository) GetBySlug(slug string) (*entities.Word, error) {
	if w, ok := r.bySlug[slug]; ok {
		return w, nil
	}
	return nil, ErrWordNotFound
}

// GetByWord looks a word up by its headword, ignoring case.
func (r *WordRepository) GetByWord(word string) (*entities.Word, error) {
	if w, ok := r.byWord[strings.ToLower(strings.TrimSpace(word))]; ok {
		return w, nil
	}
	return nil, ErrWordNotFound
}

// GetRandom retrieves a random word.
func (r *WordRepository) GetRandom() (*entities.Word, error) {
	if len(r.words) == 0 {
		return nil, ErrWordNotFound
	}
	return r.words[rand.Intn(len(r.words))], nil
}

// Groups returns the word groups sorted by number, words sorted alphabetically.
func (r *WordRepository) Groups() []entities.WordGroup {
	return r.groups
}

// GroupNumbers returns the available group numbers in ascending order.
func (r *WordRepository) GroupNumbers() []int {
	out := make([]int, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g.Group)
	}
	return out
}

// GetByGroup returns the alphabetically sorted words of one group.
func (r *WordRepository) GetByGroup(group int) ([]*entities.Word, error) {
	for _, g := range r.groups {
		if g.Group == group {
			return g.Words, nil
		}
	}
	return nil, ErrGroupNotFound
}

// GetByGroups returns the words belonging to any of the groups, in corpus order.
func (r *WordRepository) GetByGroups(groups []int) []*entities.Word {
	want := make(map[int]struct{}, len(groups))
	for _, g := range groups {
		want[g] = struct{}{}
	}

	var out []*entities.Word
	for _, w := range r.words {
		if _, ok := want[w.Group]; ok {
			out = append(out, w)
		}
	}
	return out
}

// Quarantined returns the records rejected while loading the corpus.
func (r *WordRepository) Quarantined() []RecordError {
	return r.quarantined
}
