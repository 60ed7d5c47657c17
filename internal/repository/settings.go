package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/infra/postgres"
)

var ErrSettingsNotFound = errors.New("settings not found")

type SettingsRepository struct {
	db postgres.Querier
}

func NewSettingsRepository(db postgres.Querier) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create creates default settings for a new user.
func (r *SettingsRepository) Create(ctx context.Context, s *entities.UserSettings) error {
	query := `
        INSERT INTO user_settings (
            user_id, selected_groups, quiz_type, word_count, grid_rows, grid_cols,
            shuffle_flashcards, daily_word, created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
        ON CONFLICT (user_id) DO NOTHING
    `

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query,
		s.UserID,
		groupsOrEmpty(s.SelectedGroups),
		string(s.QuizType),
		s.WordCount,
		s.GridSize.Rows,
		s.GridSize.Cols,
		s.ShuffleFlashcards,
		s.DailyWord,
	)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves settings by user ID.
// Returns ErrSettingsNotFound if settings don't exist.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
        SELECT user_id, selected_groups, quiz_type, word_count, grid_rows, grid_cols,
               shuffle_flashcards, daily_word, created_at, updated_at
        FROM user_settings
        WHERE user_id = $1
    `

	var (
		settings entities.UserSettings
		quizType string
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.SelectedGroups,
		&quizType,
		&settings.WordCount,
		&settings.GridSize.Rows,
		&settings.GridSize.Cols,
		&settings.ShuffleFlashcards,
		&settings.DailyWord,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings by user id: %w", err)
	}

	// Unknown values written by older versions fall back to the default.
	if qt, err := entities.ParseQuizType(quizType); err == nil {
		settings.QuizType = qt
	} else {
		settings.QuizType = entities.QuizTypeSynonym
	}

	return &settings, nil
}

// Update updates all settings fields.
func (r *SettingsRepository) Update(ctx context.Context, s *entities.UserSettings) error {
	query := `
        UPDATE user_settings
        SET selected_groups = $2,
            quiz_type = $3,
            word_count = $4,
            grid_rows = $5,
            grid_cols = $6,
            shuffle_flashcards = $7,
            daily_word = $8,
            updated_at = NOW()
        WHERE user_id = $1
    `

	cmdTag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query,
		s.UserID,
		groupsOrEmpty(s.SelectedGroups),
		string(s.QuizType),
		s.WordCount,
		s.GridSize.Rows,
		s.GridSize.Cols,
		s.ShuffleFlashcards,
		s.DailyWord,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

func groupsOrEmpty(groups []int) []int {
	if groups == nil {
		return []int{}
	}
	return groups
}
