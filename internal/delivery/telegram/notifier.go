package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

// SendDailyWord sends the daily word card and removes the previous one, so
// only the latest daily word stays in the chat.
func (h *Handler) SendDailyWord(ctx context.Context, sub entities.DailyWordSubscriber, payload entities.DailyWordPayload) error {
	msg := newHTMLMessage(sub.ChatID, formatDailyWord(payload))
	msg.ReplyMarkup = *buildDailyWordKeyboard(payload.Word)

	sent, err := h.bot.Send(msg)
	if err != nil {
		var tgErr *tgbotapi.Error
		if errors.As(err, &tgErr) && tgErr.Code == http.StatusForbidden {
			if derr := h.svc.Users.Deactivate(ctx, sub.UserID); derr != nil {
				h.logger.Error("failed to deactivate user",
					zap.Int64("user_id", sub.UserID),
					zap.Error(derr),
				)
			}
		}
		return fmt.Errorf("send daily word: %w", err)
	}

	prev, hadPrev := h.dailyMessages.UpsertAndGetPrev(sub.UserID, sub.ChatID, sent.MessageID)
	if hadPrev {
		del := tgbotapi.NewDeleteMessage(prev.ChatID, prev.MessageID)
		if _, err := h.bot.Request(del); err != nil {
			h.logger.Debug("failed to delete previous daily word",
				zap.Int64("user_id", sub.UserID),
				zap.Error(err),
			)
		}
	}

	return nil
}
