package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

func TestStatsService_Summary(t *testing.T) {
	stats := &fakeStatsRepo{
		quiz:  entities.QuizStats{Sessions: 2, Questions: 20, Correct: 15},
		match: entities.MatchStats{Games: 1, BestStreak: 6},
		mistakes: []entities.PairMistake{
			{A: "abate", B: "terse", Count: 3},
		},
	}
	quiz := &fakeQuizRepo{recent: make([]entities.SessionSummary, 8)}

	got, err := NewStatsService(stats, quiz).Summary(context.Background(), 1, "")
	require.NoError(t, err)
	assert.InDelta(t, 75.0, got.Quiz.Accuracy(), 0.001)
	assert.Equal(t, 6, got.Match.BestStreak)
	assert.Len(t, got.Recent, recentSessionsLimit)
	assert.Len(t, got.TopMistakes, 1)

	stats.err = errDB
	_, err = NewStatsService(stats, quiz).Summary(context.Background(), 1, "")
	assert.ErrorIs(t, err, errDB)
}

func TestStatsService_SummaryFiltersRecentByType(t *testing.T) {
	quiz := &fakeQuizRepo{recent: []entities.SessionSummary{{QuizType: entities.QuizTypeReverse}}}

	got, err := NewStatsService(&fakeStatsRepo{}, quiz).Summary(context.Background(), 1, entities.QuizTypeReverse)
	require.NoError(t, err)
	assert.Equal(t, entities.QuizTypeReverse, quiz.typeAsked)
	assert.Equal(t, entities.QuizTypeReverse, got.RecentType)
	assert.Len(t, got.Recent, 1)
}
