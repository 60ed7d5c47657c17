package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/repository"
	"github.com/aliskhannn/gre-vocab-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			if text, ok := userMessage(err); ok {
				h.sendError(chatID, text)
				return nil
			}
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
			return nil
		}
		return nil
	}
}

// userMessage maps expected errors to a message for the user.
func userMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrNoGroupsSelected):
		return msgNoGroupsSelected, true
	case errors.Is(err, service.ErrNoQuestionsAvailable):
		return msgNoQuestions, true
	case errors.Is(err, service.ErrNoPairsAvailable):
		return msgNoPairs, true
	case errors.Is(err, service.ErrNoActiveQuiz),
		errors.Is(err, entities.ErrQuizFinished),
		errors.Is(err, entities.ErrQuizNotFinished):
		return msgNoActiveQuiz, true
	case errors.Is(err, service.ErrNoActiveGame):
		return msgNoActiveGame, true
	case errors.Is(err, service.ErrNoActiveDeck):
		return msgNoActiveDeck, true
	case errors.Is(err, service.ErrStaleQuestion):
		return msgStaleQuestion, true
	case errors.Is(err, service.ErrInvalidWordCount):
		return msgInvalidWordCount, true
	case errors.Is(err, repository.ErrWordNotFound):
		return msgWordNotFound, true
	case errors.Is(err, repository.ErrGroupNotFound):
		return msgGroupNotFound, true
	default:
		return "", false
	}
}
