package service

import (
	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

const distractorCount = 3

// otherWords picks up to n random corpus entries other than w.
// Entries are compared by identity, so a different entry with the same text
// may still be picked.
func otherWords(rng *lockedRand, corpus []*entities.Word, w *entities.Word, n int, keep func(*entities.Word) bool) []*entities.Word {
	candidates := make([]*entities.Word, 0, len(corpus))
	for _, c := range corpus {
		if c == w {
			continue
		}
		if keep != nil && !keep(c) {
			continue
		}
		candidates = append(candidates, c)
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return takeFirst(candidates, n)
}

// sampleStrings picks up to n values from distinct positions of pool.
// Equal values at different positions can both be picked.
func sampleStrings(rng *lockedRand, pool []string, n int) []string {
	if len(pool) == 0 || n <= 0 {
		return nil
	}

	out := make([]string, 0, n)
	for _, i := range takeFirst(rng.Perm(len(pool)), n) {
		out = append(out, pool[i])
	}
	return out
}

// buildOptions returns the correct answer and the distractors in random order.
// Options are not deduplicated.
func buildOptions(rng *lockedRand, correct string, distractors []string) []string {
	options := make([]string, 0, len(distractors)+1)
	options = append(options, correct)
	options = append(options, distractors...)

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func hasDefinition(w *entities.Word) bool {
	_, ok := w.FirstDefinition()
	return ok
}
