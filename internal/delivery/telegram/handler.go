package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/storage"
)

type Handler struct {
	bot           *tgbotapi.BotAPI
	logger        *zap.Logger
	svc           Services
	dailyMessages *storage.MessageStorage
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	svc Services,
	dailyMessages *storage.MessageStorage,
) *Handler {
	return &Handler{
		bot:           bot,
		logger:        logger,
		svc:           svc,
		dailyMessages: dailyMessages,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	if err := h.svc.Users.EnsureUser(ctx, from.ID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		args := update.Message.CommandArguments()

		var fn HandlerFunc
		switch update.Message.Command() {
		case "start":
			fn = h.handleText(msgWelcome)
		case "help":
			fn = h.handleText(msgHelp)
		case "words":
			fn = h.handleWords()
		case "search":
			fn = h.handleSearch(args)
		case "flashcards":
			fn = h.handleFlashcards(from.ID)
		case "quiz":
			fn = h.handleQuiz(from.ID)
		case "count":
			fn = h.handleCount(from.ID, args)
		case "match":
			fn = h.handleMatch(from.ID)
		case "stats":
			fn = h.handleStats(from.ID)
		case "settings":
			fn = h.handleSettings(from.ID)
		case "reset":
			fn = h.handleResetPrompt()
		default:
			fn = h.handleText(msgUnknownCommand)
		}

		_ = h.withErrorHandling(fn)(ctx, chatID)
		return
	}

	text := strings.TrimSpace(update.Message.Text)
	if text == "" {
		return
	}
	_ = h.withErrorHandling(h.handleSearch(text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, err)
	_ = h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// edit replaces the text and keyboard of a bot message. Edits that do not
// change anything are ignored.
func (h *Handler) edit(chatID int64, msgID int, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	e := newHTMLEdit(chatID, msgID, text)
	e.ReplyMarkup = kb

	if _, err := h.bot.Send(e); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		h.logger.Error("failed to edit telegram message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", msgID),
			zap.Error(err),
		)
	}
}
