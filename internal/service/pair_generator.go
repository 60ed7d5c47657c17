package service

import (
	"math/rand"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

// PairGenerator builds synonym pairs and board tiles for the matching game.
// It is safe for concurrent use.
type PairGenerator struct {
	rng *lockedRand
}

// NewPairGenerator creates a generator. A nil rng is seeded from the clock.
func NewPairGenerator(rng *rand.Rand) *PairGenerator {
	return &PairGenerator{rng: newLockedRand(rng)}
}

// GeneratePairs walks the corpus in order and pairs each word with its first
// eligible synonym. A synonym is eligible when it is another corpus word, neither
// word is used by an earlier pair, and at least one of the two is in seed.
// Each word yields at most one pair. The result is shuffled and cut to pairCount.
func (g *PairGenerator) GeneratePairs(seed, all []*entities.Word, pairCount int) []entities.SynonymPair {
	if pairCount <= 0 {
		return nil
	}

	inCorpus := make(map[string]struct{}, len(all))
	for _, w := range all {
		inCorpus[w.Word] = struct{}{}
	}
	inSeed := make(map[string]struct{}, len(seed))
	for _, w := range seed {
		inSeed[w.Word] = struct{}{}
	}

	used := make(map[string]struct{})
	var pairs []entities.SynonymPair

	for _, w := range all {
		if _, ok := used[w.Word]; ok {
			continue
		}
		for _, s := range w.Synonyms() {
			if s == w.Word {
				continue
			}
			if _, ok := inCorpus[s]; !ok {
				continue
			}
			if _, ok := used[s]; ok {
				continue
			}
			_, wSeed := inSeed[w.Word]
			_, sSeed := inSeed[s]
			if !wSeed && !sSeed {
				continue
			}

			pairs = append(pairs, entities.SynonymPair{A: w.Word, B: s})
			used[w.Word] = struct{}{}
			used[s] = struct{}{}
			break
		}
	}

	g.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
	return takeFirst(pairs, pairCount)
}

// BuildTiles expands every pair into two complementary tiles in random order.
func (g *PairGenerator) BuildTiles(pairs []entities.SynonymPair) []entities.MatchTile {
	tiles := make([]entities.MatchTile, 0, 2*len(pairs))
	for _, p := range pairs {
		tiles = append(tiles,
			entities.MatchTile{Word: p.A, Pair: p.B},
			entities.MatchTile{Word: p.B, Pair: p.A},
		)
	}

	g.rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return tiles
}
