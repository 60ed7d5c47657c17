// Package entities contains domain entities used across the application.
package entities

// Word is a single vocabulary entry of the study corpus.
// Entries are immutable once the corpus is loaded.
type Word struct {
	Word             string       `json:"word"`              // headword
	Slug             string       `json:"slug"`              // unique identifier
	Group            int          `json:"group"`             // study group the word belongs to
	PronunciationURL string       `json:"pronunciation_url"` // link to a pronunciation audio file
	Definitions      []Definition `json:"definitions"`       // ordered definitions, first one is the primary
}

// Definition is one sense of a Word.
type Definition struct {
	PartOfSpeech string   `json:"part_of_speech"`
	Definition   string   `json:"definition"`
	Example      *string  `json:"example"`  // nullable
	Synonyms     []string `json:"synonyms"` // word texts, not necessarily present in the corpus
}

// WordGroup is a bucket of words sharing the same group number.
type WordGroup struct {
	Group int
	Words []*Word
}

// FirstDefinition returns the primary definition of the word.
func (w *Word) FirstDefinition() (Definition, bool) {
	if w == nil || len(w.Definitions) == 0 {
		return Definition{}, false
	}
	return w.Definitions[0], true
}

// Synonyms returns the synonyms of all definitions flattened in order.
func (w *Word) Synonyms() []string {
	if w == nil {
		return nil
	}

	var out []string
	for _, d := range w.Definitions {
		out = append(out, d.Synonyms...)
	}
	return out
}

// HasSynonym reports whether s is listed as a synonym in any definition.
func (w *Word) HasSynonym(s string) bool {
	for _, d := range w.Definitions {
		for _, syn := range d.Synonyms {
			if syn == s {
				return true
			}
		}
	}
	return false
}

// ExampleText returns the example of the definition or an empty string.
func (d Definition) ExampleText() string {
	if d.Example == nil {
		return ""
	}
	return *d.Example
}
