package service

import (
	"fmt"
	"math/rand"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

// QuizParams describes a quiz to generate.
type QuizParams struct {
	Groups []int
	Count  int
	Type   entities.QuizType
}

// QuestionGenerator builds multiple-choice questions from the corpus.
// It is safe for concurrent use.
type QuestionGenerator struct {
	rng *lockedRand
}

// NewQuestionGenerator creates a generator. A nil rng is seeded from the clock.
func NewQuestionGenerator(rng *rand.Rand) *QuestionGenerator {
	return &QuestionGenerator{rng: newLockedRand(rng)}
}

// SelectWords draws the quiz words from the selected groups.
func (g *QuestionGenerator) SelectWords(corpus []*entities.Word, groups []int, count int) []*entities.Word {
	return selectWords(g.rng, corpus, groups, count)
}

// Generate selects words and builds one question per word. Distractors are
// drawn from the whole corpus. Synonym questions for words without synonyms
// are dropped, so fewer than Count questions may be returned.
func (g *QuestionGenerator) Generate(corpus []*entities.Word, p QuizParams) ([]entities.QuizQuestion, error) {
	build, err := g.builder(p.Type, corpus)
	if err != nil {
		return nil, err
	}

	selected := g.SelectWords(corpus, p.Groups, p.Count)
	questions := make([]entities.QuizQuestion, 0, len(selected))
	for _, w := range selected {
		if q, ok := build(w); ok {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

type questionBuilder func(w *entities.Word) (entities.QuizQuestion, bool)

func (g *QuestionGenerator) builder(t entities.QuizType, corpus []*entities.Word) (questionBuilder, error) {
	switch t {
	case entities.QuizTypeReverse:
		return func(w *entities.Word) (entities.QuizQuestion, bool) {
			return g.reverseQuestion(corpus, w)
		}, nil
	case entities.QuizTypeDefinition:
		return func(w *entities.Word) (entities.QuizQuestion, bool) {
			return g.definitionQuestion(corpus, w)
		}, nil
	case entities.QuizTypeSynonym:
		pool := synonymPool(corpus)
		return func(w *entities.Word) (entities.QuizQuestion, bool) {
			return g.synonymQuestion(pool, w)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownQuizType, t)
	}
}

// reverseQuestion asks for the word given its first definition.
func (g *QuestionGenerator) reverseQuestion(corpus []*entities.Word, w *entities.Word) (entities.QuizQuestion, bool) {
	def, ok := w.FirstDefinition()
	if !ok {
		return entities.QuizQuestion{}, false
	}

	var distractors []string
	for _, o := range otherWords(g.rng, corpus, w, distractorCount, nil) {
		distractors = append(distractors, o.Word)
	}

	return entities.QuizQuestion{
		Prompt:      def.Definition,
		Options:     buildOptions(g.rng, w.Word, distractors),
		Correct:     w.Word,
		Explanation: def.ExampleText(),
	}, true
}

// definitionQuestion asks for the first definition of the word.
func (g *QuestionGenerator) definitionQuestion(corpus []*entities.Word, w *entities.Word) (entities.QuizQuestion, bool) {
	def, ok := w.FirstDefinition()
	if !ok {
		return entities.QuizQuestion{}, false
	}

	var distractors []string
	for _, o := range otherWords(g.rng, corpus, w, distractorCount, hasDefinition) {
		od, _ := o.FirstDefinition()
		distractors = append(distractors, od.Definition)
	}

	return entities.QuizQuestion{
		Prompt:      w.Word,
		Options:     buildOptions(g.rng, def.Definition, distractors),
		Correct:     def.Definition,
		Explanation: def.ExampleText(),
	}, true
}

// synonymQuestion asks for one of the word's synonyms. Distractors come from
// the corpus-wide synonym multiset minus the word's own synonyms.
func (g *QuestionGenerator) synonymQuestion(pool []string, w *entities.Word) (entities.QuizQuestion, bool) {
	syns := w.Synonyms()
	if len(syns) == 0 {
		return entities.QuizQuestion{}, false
	}
	correct := syns[g.rng.Intn(len(syns))]

	own := make(map[string]struct{}, len(syns))
	for _, s := range syns {
		own[s] = struct{}{}
	}
	candidates := make([]string, 0, len(pool))
	for _, s := range pool {
		if _, ok := own[s]; !ok {
			candidates = append(candidates, s)
		}
	}

	var explanation string
	if def, ok := w.FirstDefinition(); ok {
		explanation = def.ExampleText()
	}

	return entities.QuizQuestion{
		Prompt:      w.Word,
		Options:     buildOptions(g.rng, correct, sampleStrings(g.rng, candidates, distractorCount)),
		Correct:     correct,
		Explanation: explanation,
	}, true
}

// synonymPool flattens the synonyms of every word, keeping repeats.
func synonymPool(corpus []*entities.Word) []string {
	var pool []string
	for _, w := range corpus {
		pool = append(pool, w.Synonyms()...)
	}
	return pool
}
