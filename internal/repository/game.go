package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/infra/postgres"
)

// GameRepository stores finished matching games.
type GameRepository struct {
	db postgres.Querier
}

func NewGameRepository(db postgres.Querier) *GameRepository {
	return &GameRepository{db: db}
}

// SaveResult inserts the game and its mistakes. Run it inside a transaction
// so both land together.
func (r *GameRepository) SaveResult(ctx context.Context, res *entities.MatchResult) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO match_games (
			id, user_id, grid_rows, grid_cols, pairs, attempts, best_streak, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		res.ID,
		res.UserID,
		res.Grid.Rows,
		res.Grid.Cols,
		res.Pairs,
		res.Attempts,
		res.BestStreak,
		res.StartedAt,
		res.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert match game: %w", err)
	}

	if len(res.Mistakes) == 0 {
		return nil
	}

	insert := psql.Insert("match_mistakes").Columns("game_id", "word_a", "word_b", "count")
	for _, m := range res.Mistakes {
		insert = insert.Values(res.ID, m.A, m.B, m.Count)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build mistakes insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert match mistakes: %w", err)
	}

	return nil
}
