package service

import (
	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

// selectWords draws min(count, len(pool)) words without replacement from the
// words of the selected groups.
func selectWords(rng *lockedRand, corpus []*entities.Word, groups []int, count int) []*entities.Word {
	if count <= 0 || len(groups) == 0 {
		return nil
	}

	want := make(map[int]struct{}, len(groups))
	for _, g := range groups {
		want[g] = struct{}{}
	}

	pool := make([]*entities.Word, 0, len(corpus))
	for _, w := range corpus {
		if _, ok := want[w.Group]; ok {
			pool = append(pool, w)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return takeFirst(pool, count)
}

func takeFirst[T any](xs []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(xs) <= n {
		return xs
	}
	return xs[:n]
}
