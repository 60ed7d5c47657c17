package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

var settingsColumns = []string{
	"user_id", "selected_groups", "quiz_type", "word_count", "grid_rows", "grid_cols",
	"shuffle_flashcards", "daily_word", "created_at", "updated_at",
}

func TestSettingsRepository_GetByUserID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		setup    func(mock pgxmock.PgxPoolIface)
		wantErr  error
		wantType entities.QuizType
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT user_id, selected_groups`).
					WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows(settingsColumns).
						AddRow(int64(1), []int{1, 2}, "reverse", 15, 4, 5, true, false, now, now))
			},
			wantType: entities.QuizTypeReverse,
		},
		{
			name: "unknown quiz type falls back",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT user_id, selected_groups`).
					WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows(settingsColumns).
						AddRow(int64(1), []int{}, "mixed", 0, 4, 4, false, false, now, now))
			},
			wantType: entities.QuizTypeSynonym,
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT user_id, selected_groups`).
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: ErrSettingsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			s, err := NewSettingsRepository(mock).GetByUserID(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, s.QuizType)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSettingsRepository_Update(t *testing.T) {
	mock := newMock(t)
	s := entities.NewUserSettings(1)
	s.SelectedGroups = []int{2}
	s.GridSize = entities.GridSize{Rows: 4, Cols: 3}

	mock.ExpectExec(`UPDATE user_settings`).
		WithArgs(int64(1), []int{2}, "synonym", 0, 4, 3, false, false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := NewSettingsRepository(mock).Update(context.Background(), s)
	assert.ErrorIs(t, err, ErrSettingsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Create(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO user_settings`).
		WithArgs(int64(1), []int{}, "synonym", 0, 4, 4, false, false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewSettingsRepository(mock).Create(context.Background(), entities.NewUserSettings(1)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
