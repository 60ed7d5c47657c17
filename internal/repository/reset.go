package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/gre-vocab-bot/internal/infra/postgres"
)

type ResetRepository struct {
	db postgres.Querier
}

func NewResetRepository(db postgres.Querier) *ResetRepository {
	return &ResetRepository{
		db: db,
	}
}

// ResetUser deletes the quiz and game history of a user.
// Settings are kept. Call it inside a transaction.
func (r *ResetRepository) ResetUser(ctx context.Context, userID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	// Answers and mistakes cascade.
	if _, err := q.Exec(ctx, `DELETE FROM quiz_sessions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete quiz sessions: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM match_games WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete match games: %w", err)
	}

	return nil
}
