package entities

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MatchTile is one card on the matching-game board.
// Pair holds the word of the complementary tile.
type MatchTile struct {
	Word string `json:"word"`
	Pair string `json:"pair"`
}

// SynonymPair is two corpus words that are synonyms of each other.
type SynonymPair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// GridSize is the board layout of a matching game.
type GridSize struct {
	Rows int
	Cols int
}

// GridSizes lists the supported board layouts.
var GridSizes = []GridSize{{4, 3}, {4, 4}, {4, 5}}

// DefaultGridSize is used when the user has not picked one.
var DefaultGridSize = GridSize{4, 4}

// ParseGridSize parses "RxC" into one of the supported grid sizes.
func ParseGridSize(s string) (GridSize, error) {
	rs, cs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return GridSize{}, fmt.Errorf("%w: %q", ErrInvalidGridSize, s)
	}
	rows, err1 := strconv.Atoi(rs)
	cols, err2 := strconv.Atoi(cs)
	if err1 != nil || err2 != nil {
		return GridSize{}, fmt.Errorf("%w: %q", ErrInvalidGridSize, s)
	}

	g := GridSize{Rows: rows, Cols: cols}
	for _, supported := range GridSizes {
		if g == supported {
			return g, nil
		}
	}
	return GridSize{}, fmt.Errorf("%w: %q", ErrInvalidGridSize, s)
}

func (g GridSize) String() string { return fmt.Sprintf("%dx%d", g.Rows, g.Cols) }

// PairCount is the number of synonym pairs needed to fill the grid.
func (g GridSize) PairCount() int { return g.Rows * g.Cols / 2 }

// MatchPhase is the state of the match-check state machine.
type MatchPhase int

const (
	MatchIdle MatchPhase = iota
	MatchOneSelected
	MatchResolving
	MatchComplete
)

func (p MatchPhase) String() string {
	switch p {
	case MatchIdle:
		return "idle"
	case MatchOneSelected:
		return "one_selected"
	case MatchResolving:
		return "resolving"
	case MatchComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// MatchOutcome is the pending result of a second tile selection.
type MatchOutcome int

const (
	OutcomeNone MatchOutcome = iota
	OutcomeMatch
	OutcomeMismatch
)

// PairKey identifies an unordered pair of words. A <= B.
type PairKey struct {
	A string
	B string
}

// NewPairKey orders the words so that (a, b) and (b, a) share a key.
func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// PairMistake is an unordered pair of words the player confused.
type PairMistake struct {
	A     string
	B     string
	Count int
}

// MatchGame is the state of one matching-game session.
// Transitions return a new value; the receiver is never modified.
type MatchGame struct {
	ID         uuid.UUID
	Grid       GridSize
	Tiles      []MatchTile
	Phase      MatchPhase
	First      int // first selected tile, -1 when none
	Second     int // second selected tile while resolving, -1 otherwise
	Pending    MatchOutcome
	Matched    []bool
	Attempts   int
	Streak     int
	BestStreak int
	Mistakes   map[PairKey]int
	StartedAt  time.Time
}

// NewMatchGame creates a game over the given tiles.
func NewMatchGame(grid GridSize, tiles []MatchTile) MatchGame {
	g := MatchGame{
		ID:        uuid.New(),
		Grid:      grid,
		Tiles:     tiles,
		Phase:     MatchIdle,
		First:     -1,
		Second:    -1,
		Matched:   make([]bool, len(tiles)),
		Mistakes:  make(map[PairKey]int),
		StartedAt: time.Now(),
	}
	if len(tiles) == 0 {
		g.Phase = MatchComplete
	}
	return g
}

// Select handles a click on tile idx. It returns the new state and, when two
// tiles are selected, the outcome that Resolve will commit.
func (g MatchGame) Select(idx int) (MatchGame, MatchOutcome) {
	if idx < 0 || idx >= len(g.Tiles) || g.Matched[idx] {
		return g, OutcomeNone
	}

	switch g.Phase {
	case MatchIdle:
		next := g.clone()
		next.Phase = MatchOneSelected
		next.First = idx
		return next, OutcomeNone

	case MatchOneSelected:
		if idx == g.First {
			return g, OutcomeNone
		}
		next := g.clone()
		next.Phase = MatchResolving
		next.Second = idx
		next.Attempts++
		if g.Tiles[g.First].Pair == g.Tiles[idx].Word {
			next.Pending = OutcomeMatch
		} else {
			next.Pending = OutcomeMismatch
		}
		return next, next.Pending

	default:
		return g, OutcomeNone
	}
}

// Resolve commits the pending outcome and returns to Idle, or to Complete
// when every tile is matched.
func (g MatchGame) Resolve() MatchGame {
	if g.Phase != MatchResolving {
		return g
	}

	next := g.clone()
	switch g.Pending {
	case OutcomeMatch:
		next.Matched[g.First] = true
		next.Matched[g.Second] = true
		next.Streak++
		if next.Streak > next.BestStreak {
			next.BestStreak = next.Streak
		}
	case OutcomeMismatch:
		next.Streak = 0
		key := NewPairKey(g.Tiles[g.First].Word, g.Tiles[g.Second].Word)
		next.Mistakes[key]++
	}

	next.First, next.Second = -1, -1
	next.Pending = OutcomeNone
	next.Phase = MatchIdle
	if next.MatchedCount() == len(next.Tiles) {
		next.Phase = MatchComplete
	}
	return next
}

// MatchedCount returns the number of matched tiles.
func (g MatchGame) MatchedCount() int {
	n := 0
	for _, m := range g.Matched {
		if m {
			n++
		}
	}
	return n
}

// IsSelected reports whether tile idx is currently highlighted.
func (g MatchGame) IsSelected(idx int) bool {
	return idx >= 0 && (idx == g.First || idx == g.Second)
}

// PairCount is the number of pairs on the board.
func (g MatchGame) PairCount() int { return len(g.Tiles) / 2 }

// MistakeList returns the confused pairs sorted by count, most frequent first.
func (g MatchGame) MistakeList() []PairMistake {
	out := make([]PairMistake, 0, len(g.Mistakes))
	for k, c := range g.Mistakes {
		out = append(out, PairMistake{A: k.A, B: k.B, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// Result summarizes a game for history.
func (g MatchGame) Result(userID int64) *MatchResult {
	return &MatchResult{
		ID:         g.ID,
		UserID:     userID,
		Grid:       g.Grid,
		Pairs:      g.PairCount(),
		Attempts:   g.Attempts,
		BestStreak: g.BestStreak,
		Mistakes:   g.MistakeList(),
		StartedAt:  g.StartedAt,
		FinishedAt: time.Now(),
	}
}

func (g MatchGame) clone() MatchGame {
	out := g
	out.Matched = append([]bool(nil), g.Matched...)
	out.Mistakes = make(map[PairKey]int, len(g.Mistakes))
	for k, v := range g.Mistakes {
		out.Mistakes[k] = v
	}
	return out
}

// MatchResult is a finished matching game as stored in history.
type MatchResult struct {
	ID         uuid.UUID
	UserID     int64
	Grid       GridSize
	Pairs      int
	Attempts   int
	BestStreak int
	Mistakes   []PairMistake
	StartedAt  time.Time
	FinishedAt time.Time
}
