package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/infra/postgres"
)

// UserRepository provides access to user data in the database.
type UserRepository struct {
	db postgres.Querier
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db postgres.Querier) *UserRepository {
	return &UserRepository{db: db}
}

// SaveUser inserts a new user or refreshes the chat of an existing one.
// It sets IsActive and CreatedAt fields from the database.
func (r *UserRepository) SaveUser(ctx context.Context, user *entities.User) error {
	query := `
    INSERT INTO users (id, chat_id)
    VALUES ($1, $2)
    ON CONFLICT (id) DO UPDATE SET chat_id = EXCLUDED.chat_id, is_active = TRUE
    RETURNING is_active, created_at
    `
	q := postgres.QuerierFromCtx(ctx, r.db)
	err := q.QueryRow(ctx, query, user.ID, user.ChatID).Scan(&user.IsActive, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// Deactivate marks a user as unreachable, e.g. after they blocked the bot.
func (r *UserRepository) Deactivate(ctx context.Context, userID int64) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE users SET is_active = FALSE WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

// ListDailyWordSubscribers returns active users subscribed to the daily word.
func (r *UserRepository) ListDailyWordSubscribers(ctx context.Context) ([]entities.DailyWordSubscriber, error) {
	query := `
		SELECT u.id, u.chat_id
		FROM users u
		JOIN user_settings s ON s.user_id = u.id
		WHERE u.is_active AND s.daily_word
		ORDER BY u.id
	`

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list daily word subscribers: %w", err)
	}
	defer rows.Close()

	var subs []entities.DailyWordSubscriber
	for rows.Next() {
		var s entities.DailyWordSubscriber
		if err := rows.Scan(&s.UserID, &s.ChatID); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subs = append(subs, s)
	}

	return subs, rows.Err()
}
