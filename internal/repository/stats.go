package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/infra/postgres"
)

// StatsRepository aggregates quiz and game history.
type StatsRepository struct {
	db postgres.Querier
}

func NewStatsRepository(db postgres.Querier) *StatsRepository {
	return &StatsRepository{db: db}
}

// QuizStats summarizes the completed quiz sessions of a user.
func (r *StatsRepository) QuizStats(ctx context.Context, userID int64) (entities.QuizStats, error) {
	query := `
        SELECT
            COUNT(*),
            COALESCE(SUM(total_questions), 0),
            COALESCE(SUM(correct_answers), 0),
            COALESCE(MAX(correct_answers * 100.0 / NULLIF(total_questions, 0)), 0),
            COALESCE(AVG(correct_answers * 100.0 / NULLIF(total_questions, 0)), 0)
        FROM quiz_sessions
        WHERE user_id = $1 AND session_status = 'completed'
    `

	var s entities.QuizStats
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&s.Sessions,
		&s.Questions,
		&s.Correct,
		&s.BestScore,
		&s.AverageScore,
	)
	if err != nil {
		return entities.QuizStats{}, fmt.Errorf("get quiz stats: %w", err)
	}

	return s, nil
}

// MatchStats summarizes the finished matching games of a user.
func (r *StatsRepository) MatchStats(ctx context.Context, userID int64) (entities.MatchStats, error) {
	query := `
        SELECT
            COUNT(*),
            COALESCE(MAX(best_streak), 0),
            COALESCE(SUM(attempts)::float8 / NULLIF(SUM(pairs), 0), 0)
        FROM match_games
        WHERE user_id = $1
    `

	var s entities.MatchStats
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&s.Games,
		&s.BestStreak,
		&s.AverageAttempts,
	)
	if err != nil {
		return entities.MatchStats{}, fmt.Errorf("get match stats: %w", err)
	}

	return s, nil
}

// TopMistakes returns the word pairs the user confused most often across games.
// A zero userID aggregates over all users.
func (r *StatsRepository) TopMistakes(ctx context.Context, userID int64, limit uint64) ([]entities.PairMistake, error) {
	builder := psql.
		Select("m.word_a", "m.word_b", "SUM(m.count) AS total").
		From("match_mistakes m").
		GroupBy("m.word_a", "m.word_b").
		OrderBy("total DESC", "m.word_a", "m.word_b").
		Limit(limit)
	if userID != 0 {
		builder = builder.
			Join("match_games g ON g.id = m.game_id").
			Where(squirrel.Eq{"g.user_id": userID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top mistakes query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("top mistakes: %w", err)
	}
	defer rows.Close()

	var out []entities.PairMistake
	for rows.Next() {
		var m entities.PairMistake
		if err := rows.Scan(&m.A, &m.B, &m.Count); err != nil {
			return nil, fmt.Errorf("scan mistake: %w", err)
		}
		out = append(out, m)
	}

	return out, rows.Err()
}
