package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

func TestDailyWordService_SendAll(t *testing.T) {
	users := &fakeUserRepo{subs: []entities.DailyWordSubscriber{
		{UserID: 1, ChatID: 10},
		{UserID: 2, ChatID: 20},
		{UserID: 3, ChatID: 30},
	}}
	stats := &fakeStatsRepo{quiz: entities.QuizStats{Sessions: 4}}
	svc := NewDailyWordService(users, testWords(t), stats, "0 9 * * *", nopLogger())

	_, err := svc.SendAll(context.Background())
	require.Error(t, err)

	notifier := newFakeNotifier()
	notifier.fail[2] = true
	svc.SetNotifier(notifier)

	sent, err := svc.SendAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	require.Contains(t, notifier.sent, int64(1))
	require.Contains(t, notifier.sent, int64(3))
	assert.Same(t, notifier.sent[1].Word, notifier.sent[3].Word)
	assert.Equal(t, 4, notifier.sent[1].Stats.Sessions)
}

func TestDailyWordService_BadSchedule(t *testing.T) {
	svc := NewDailyWordService(&fakeUserRepo{}, testWords(t), &fakeStatsRepo{}, "not a schedule", nopLogger())
	assert.Error(t, svc.Start(context.Background()))
}
