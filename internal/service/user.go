package service

import (
	"context"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

type UserService struct {
	users    UserRepository
	settings SettingsRepository
	tr       Transactor
}

func NewUserService(users UserRepository, settings SettingsRepository, tr Transactor) *UserService {
	return &UserService{users: users, settings: settings, tr: tr}
}

// EnsureUser registers the user with default settings. Known users are
// reactivated and their chat id refreshed.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) error {
	user := entities.NewUser(userID, chatID)

	return s.tr.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.users.SaveUser(ctx, user); err != nil {
			return err
		}
		return s.settings.Create(ctx, entities.NewUserSettings(userID))
	})
}

// Deactivate marks a user that blocked the bot.
func (s *UserService) Deactivate(ctx context.Context, userID int64) error {
	return s.users.Deactivate(ctx, userID)
}
