package entities

import "fmt"

// QuizType selects how quiz questions are built from a word.
type QuizType string

const (
	QuizTypeSynonym    QuizType = "synonym"    // word -> one of its synonyms
	QuizTypeDefinition QuizType = "definition" // word -> its definition
	QuizTypeReverse    QuizType = "reverse"    // definition -> the word
)

// QuizTypes lists the supported quiz types in display order.
var QuizTypes = []QuizType{QuizTypeSynonym, QuizTypeDefinition, QuizTypeReverse}

// ParseQuizType converts a raw string into a QuizType.
func ParseQuizType(s string) (QuizType, error) {
	for _, t := range QuizTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuizType, s)
}

// Label returns a human-readable name of the quiz type.
func (t QuizType) Label() string {
	switch t {
	case QuizTypeSynonym:
		return "Synonym Matching"
	case QuizTypeDefinition:
		return "Pick the Correct Definition"
	case QuizTypeReverse:
		return "Pick the Correct Word for a Definition"
	default:
		return string(t)
	}
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"` // correct answer plus distractors, shuffled
	Correct     string   `json:"correct"`
	Explanation string   `json:"explanation,omitempty"` // example sentence of the prompted word
}

// CorrectIndex returns the index of the correct answer among the options, or -1.
func (q QuizQuestion) CorrectIndex() int {
	for i, o := range q.Options {
		if o == q.Correct {
			return i
		}
	}
	return -1
}
