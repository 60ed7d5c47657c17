package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTiles() []MatchTile {
	return []MatchTile{
		{Word: "happy", Pair: "glad"},
		{Word: "glad", Pair: "happy"},
		{Word: "sad", Pair: "unhappy"},
		{Word: "unhappy", Pair: "sad"},
	}
}

func TestMatchGame_MatchIncrementsStreak(t *testing.T) {
	g := NewMatchGame(DefaultGridSize, sampleTiles())

	g, out := g.Select(0)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, MatchOneSelected, g.Phase)

	g, out = g.Select(1)
	assert.Equal(t, OutcomeMatch, out)
	assert.Equal(t, MatchResolving, g.Phase)
	assert.Equal(t, 1, g.Attempts)

	g = g.Resolve()
	assert.Equal(t, MatchIdle, g.Phase)
	assert.True(t, g.Matched[0])
	assert.True(t, g.Matched[1])
	assert.Equal(t, 1, g.Streak)
	assert.Equal(t, 1, g.BestStreak)
	assert.Empty(t, g.Mistakes)
}

func TestMatchGame_MismatchResetsStreakAndRecordsMistake(t *testing.T) {
	g := NewMatchGame(DefaultGridSize, sampleTiles())

	g, _ = g.Select(0)
	g, out := g.Select(2)
	require.Equal(t, OutcomeMismatch, out)

	g = g.Resolve()
	assert.Equal(t, MatchIdle, g.Phase)
	assert.Equal(t, 0, g.Streak)
	assert.False(t, g.Matched[0])
	assert.False(t, g.Matched[2])
	assert.Equal(t, 1, g.Mistakes[NewPairKey("happy", "sad")])
	assert.Equal(t, 1, g.Mistakes[NewPairKey("sad", "happy")])
}

func TestMatchGame_InputsLockedWhileResolving(t *testing.T) {
	g := NewMatchGame(DefaultGridSize, sampleTiles())
	g, _ = g.Select(0)
	g, _ = g.Select(2)

	locked, out := g.Select(3)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, g, locked)
}

func TestMatchGame_IgnoredClicks(t *testing.T) {
	g := NewMatchGame(DefaultGridSize, sampleTiles())

	same, out := g.Select(-1)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, MatchIdle, same.Phase)

	same, _ = g.Select(4)
	assert.Equal(t, MatchIdle, same.Phase)

	g, _ = g.Select(1)
	again, out := g.Select(1)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, MatchOneSelected, again.Phase)

	g, _ = g.Select(0)
	g = g.Resolve()
	g, out = g.Select(0)
	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, MatchIdle, g.Phase)
}

func TestMatchGame_TransitionsDoNotMutateReceiver(t *testing.T) {
	start := NewMatchGame(DefaultGridSize, sampleTiles())
	one, _ := start.Select(0)
	two, _ := one.Select(2)
	_ = two.Resolve()

	assert.Equal(t, MatchIdle, start.Phase)
	assert.Equal(t, MatchOneSelected, one.Phase)
	assert.Equal(t, MatchResolving, two.Phase)
	assert.Empty(t, two.Mistakes)
	assert.Equal(t, 1, two.Attempts)
}

func TestMatchGame_Complete(t *testing.T) {
	g := NewMatchGame(DefaultGridSize, sampleTiles())

	steps := [][2]int{{0, 2}, {0, 1}, {3, 2}}
	for _, s := range steps {
		g, _ = g.Select(s[0])
		g, _ = g.Select(s[1])
		g = g.Resolve()
	}

	assert.Equal(t, MatchComplete, g.Phase)
	assert.Equal(t, 4, g.MatchedCount())
	assert.Equal(t, 3, g.Attempts)
	assert.Equal(t, 2, g.BestStreak)

	res := g.Result(42)
	assert.Equal(t, int64(42), res.UserID)
	assert.Equal(t, 2, res.Pairs)
	assert.Equal(t, []PairMistake{{A: "happy", B: "sad", Count: 1}}, res.Mistakes)
}

func TestMatchGame_MistakeListOrder(t *testing.T) {
	g := NewMatchGame(DefaultGridSize, sampleTiles())
	for _, s := range [][2]int{{0, 2}, {1, 3}, {0, 2}, {0, 3}} {
		g, _ = g.Select(s[0])
		g, _ = g.Select(s[1])
		g = g.Resolve()
	}

	assert.Equal(t, []PairMistake{
		{A: "happy", B: "sad", Count: 2},
		{A: "glad", B: "unhappy", Count: 1},
		{A: "happy", B: "unhappy", Count: 1},
	}, g.MistakeList())
}

func TestNewMatchGame_EmptyBoardIsComplete(t *testing.T) {
	g := NewMatchGame(DefaultGridSize, nil)
	assert.Equal(t, MatchComplete, g.Phase)
}

func TestParseGridSize(t *testing.T) {
	tests := []struct {
		in      string
		want    GridSize
		wantErr bool
	}{
		{in: "4x4", want: GridSize{4, 4}},
		{in: "4x3", want: GridSize{4, 3}},
		{in: " 4X5 ", want: GridSize{4, 5}},
		{in: "3x3", wantErr: true},
		{in: "four", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGridSize(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidGridSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, 8, GridSize{4, 4}.PairCount())
	assert.Equal(t, 6, GridSize{4, 3}.PairCount())
	assert.Equal(t, "4x5", GridSize{4, 5}.String())
}
