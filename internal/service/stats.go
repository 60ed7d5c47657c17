package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

const (
	recentSessionsLimit = 5
	topMistakesLimit    = 5
)

type StatsService struct {
	stats    StatsRepository
	quizRepo QuizRepository
}

func NewStatsService(stats StatsRepository, quizRepo QuizRepository) *StatsService {
	return &StatsService{stats: stats, quizRepo: quizRepo}
}

// Summary collects the statistics screen of a user. A non-empty quizType
// limits the recent sessions to that type.
func (s *StatsService) Summary(ctx context.Context, userID int64, quizType entities.QuizType) (entities.UserStats, error) {
	out := entities.UserStats{RecentType: quizType}
	var err error

	if out.Quiz, err = s.stats.QuizStats(ctx, userID); err != nil {
		return out, fmt.Errorf("quiz stats: %w", err)
	}
	if out.Match, err = s.stats.MatchStats(ctx, userID); err != nil {
		return out, fmt.Errorf("match stats: %w", err)
	}
	if out.Recent, err = s.quizRepo.RecentSessions(ctx, userID, quizType, recentSessionsLimit); err != nil {
		return out, fmt.Errorf("recent sessions: %w", err)
	}
	if out.TopMistakes, err = s.stats.TopMistakes(ctx, userID, topMistakesLimit); err != nil {
		return out, fmt.Errorf("top mistakes: %w", err)
	}

	return out, nil
}
