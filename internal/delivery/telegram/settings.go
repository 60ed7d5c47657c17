package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

func (h *Handler) handleSettingsCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (view, error) {
	userID := cb.From.ID

	var (
		us    *entities.UserSettings
		toast string
		err   error
	)

	switch cd.param(0) {
	case settingsMenu:
		us, err = h.svc.Settings.GetOrCreate(ctx, userID)
	case settingsDailyWord:
		us, err = h.svc.Settings.ToggleDailyWord(ctx, userID)
		if err == nil {
			toast = msgDailyWordDisabled
			if us.DailyWord {
				toast = msgDailyWordEnabled
			}
		}
	case settingsShuffle:
		us, err = h.svc.Settings.ToggleShuffle(ctx, userID)
	default:
		return view{}, nil
	}
	if err != nil {
		return view{}, err
	}

	return view{text: formatSettings(us), kb: buildSettingsKeyboard(us), toast: toast}, nil
}

func (h *Handler) handleResetCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (view, error) {
	userID := cb.From.ID

	switch cd.param(0) {
	case resetAsk:
		return view{
			text: msgResetPrompt,
			kb:   buildResetConfirmKeyboard(),
		}, nil

	case resetConfirm:
		if err := h.svc.Reset.ResetUser(ctx, userID); err != nil {
			return view{}, err
		}
		h.logger.Info("user history reset", zap.Int64("user_id", userID))
		return view{text: msgResetDone}, nil

	case resetCancel:
		return view{text: msgResetCancelled}, nil

	default:
		return view{}, nil
	}
}

// handleStatsCallback refreshes the statistics, optionally filtering the
// recent sessions by the quiz type in the first parameter.
func (h *Handler) handleStatsCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (view, error) {
	var quizType entities.QuizType
	if raw := cd.param(0); raw != "" {
		t, err := entities.ParseQuizType(raw)
		if err != nil {
			return view{}, nil
		}
		quizType = t
	}

	stats, err := h.svc.Stats.Summary(ctx, cb.From.ID, quizType)
	if err != nil {
		return view{}, err
	}
	return view{text: formatStats(stats), kb: buildStatsKeyboard(stats.RecentType)}, nil
}
