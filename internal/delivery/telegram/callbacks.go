package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// view is the new content of the message a callback came from. An empty
// text leaves the message unchanged; toast is shown as a popup.
type view struct {
	text  string
	kb    *tgbotapi.InlineKeyboardMarkup
	toast string
}

type callbackFunc func(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (view, error)

func (h *Handler) callbackRoute(action string) (callbackFunc, bool) {
	switch action {
	case actionNoop:
		return func(context.Context, *tgbotapi.CallbackQuery, callbackData) (view, error) {
			return view{}, nil
		}, true
	case actionGroups:
		return h.handleGroupsCallback, true
	case actionWordList:
		return h.handleWordListCallback, true
	case actionWord:
		return h.handleWordCallback, true
	case actionFlashcards:
		return h.handleFlashcardCallback, true
	case actionQuizSetup:
		return h.handleQuizSetupCallback, true
	case actionQuizAnswer:
		return h.handleQuizAnswerCallback, true
	case actionQuizReview:
		return h.handleQuizReviewCallback, true
	case actionQuizBack:
		return h.handleQuizBackCallback, true
	case actionMatchSetup:
		return h.handleMatchSetupCallback, true
	case actionMatchTile:
		return h.handleMatchTileCallback, true
	case actionSettings:
		return h.handleSettingsCallback, true
	case actionReset:
		return h.handleResetCallback, true
	case actionStats:
		return h.handleStatsCallback, true
	default:
		return nil, false
	}
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	cd := decodeCallback(cb.Data)

	fn, ok := h.callbackRoute(cd.Action)
	if !ok || cb.Message == nil {
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "", false)
		return
	}

	v, err := fn(ctx, cb, cd)
	if err != nil {
		text, expected := userMessage(err)
		if !expected {
			h.logger.Error("callback error",
				zap.Int64("user_id", cb.From.ID),
				zap.String("data", cb.Data),
				zap.Error(err),
			)
			text = msgInternalError
		}
		h.answerCallback(cb.ID, text, true)
		return
	}

	if v.text != "" {
		h.edit(cb.Message.Chat.ID, cb.Message.MessageID, v.text, v.kb)
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, v.toast, false)
}

func (h *Handler) answerCallback(id, text string, alert bool) {
	answer := tgbotapi.NewCallback(id, text)
	answer.ShowAlert = alert
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
