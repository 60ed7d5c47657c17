package service

import (
	"context"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/storage"
)

type ResetService struct {
	resetRepo    ResetRepository
	settingsRepo SettingsRepository
	tr           Transactor
	quizzes      *storage.SessionStore[entities.QuizRun]
	games        *storage.SessionStore[entities.MatchGame]
	decks        *storage.SessionStore[entities.FlashcardDeck]
}

func NewResetService(
	resetRepo ResetRepository,
	settingsRepo SettingsRepository,
	tr Transactor,
	quizzes *storage.SessionStore[entities.QuizRun],
	games *storage.SessionStore[entities.MatchGame],
	decks *storage.SessionStore[entities.FlashcardDeck],
) *ResetService {
	return &ResetService{
		resetRepo:    resetRepo,
		settingsRepo: settingsRepo,
		tr:           tr,
		quizzes:      quizzes,
		games:        games,
		decks:        decks,
	}
}

// ResetUser deletes the history of a user, restores default settings and
// drops every running session.
func (s *ResetService) ResetUser(ctx context.Context, userID int64) error {
	err := s.tr.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.resetRepo.ResetUser(ctx, userID); err != nil {
			return err
		}
		return s.settingsRepo.Update(ctx, entities.NewUserSettings(userID))
	})
	if err != nil {
		return err
	}

	s.quizzes.Delete(userID)
	s.games.Delete(userID)
	s.decks.Delete(userID)
	return nil
}
