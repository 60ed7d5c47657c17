package service

import (
	"context"
	"errors"
	"time"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/repository"
)

type SettingsService struct {
	repository SettingsRepository
	limits     WordCountLimits
}

func NewSettingsService(repository SettingsRepository, limits WordCountLimits) *SettingsService {
	return &SettingsService{repository: repository, limits: limits}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			settings = entities.NewUserSettings(userID)
			if err := s.repository.Create(ctx, settings); err != nil {
				return nil, err
			}
			return s.repository.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	return settings, nil
}

// ToggleGroup selects or deselects a group. The word count is reset to the
// default because the limits depend on the number of groups.
func (s *SettingsService) ToggleGroup(ctx context.Context, userID int64, group int) (*entities.UserSettings, error) {
	return s.update(ctx, userID, func(us *entities.UserSettings) error {
		us.ToggleGroup(group)
		us.WordCount = 0
		return nil
	})
}

func (s *SettingsService) SetQuizType(ctx context.Context, userID int64, t entities.QuizType) (*entities.UserSettings, error) {
	return s.update(ctx, userID, func(us *entities.UserSettings) error {
		if _, err := entities.ParseQuizType(string(t)); err != nil {
			return err
		}
		us.QuizType = t
		return nil
	})
}

// SetWordCount parses raw and stores it clamped to the limit for the
// selected groups.
func (s *SettingsService) SetWordCount(ctx context.Context, userID int64, raw string) (*entities.UserSettings, error) {
	return s.update(ctx, userID, func(us *entities.UserSettings) error {
		if len(us.SelectedGroups) == 0 {
			return ErrNoGroupsSelected
		}
		n, ok := ClampWordCount(raw, s.limits.Max(len(us.SelectedGroups)))
		if !ok {
			return ErrInvalidWordCount
		}
		us.WordCount = n
		return nil
	})
}

// WordCount returns the effective quiz word count and its upper limit.
func (s *SettingsService) WordCount(us *entities.UserSettings) (count, limit int) {
	groups := len(us.SelectedGroups)
	limit = s.limits.Max(groups)
	if us.WordCount > 0 {
		return min(us.WordCount, limit), limit
	}
	return s.limits.Default(groups), limit
}

func (s *SettingsService) SetGridSize(ctx context.Context, userID int64, grid entities.GridSize) (*entities.UserSettings, error) {
	return s.update(ctx, userID, func(us *entities.UserSettings) error {
		g, err := entities.ParseGridSize(grid.String())
		if err != nil {
			return err
		}
		us.GridSize = g
		return nil
	})
}

func (s *SettingsService) ToggleShuffle(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	return s.update(ctx, userID, func(us *entities.UserSettings) error {
		us.ShuffleFlashcards = !us.ShuffleFlashcards
		return nil
	})
}

func (s *SettingsService) ToggleDailyWord(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	return s.update(ctx, userID, func(us *entities.UserSettings) error {
		us.DailyWord = !us.DailyWord
		return nil
	})
}

func (s *SettingsService) update(ctx context.Context, userID int64, fn func(*entities.UserSettings) error) (*entities.UserSettings, error) {
	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := fn(settings); err != nil {
		return nil, err
	}
	settings.UpdatedAt = time.Now()

	if err := s.repository.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
