package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

// handleText sends a static HTML text.
func (h *Handler) handleText(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newHTMLMessage(chatID, text))
	}
}

func (h *Handler) sendView(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) error {
	msg := newHTMLMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	return h.send(msg)
}

// handleWords shows the group picker of the word browser.
func (h *Handler) handleWords() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb := h.renderWordGroups()
		return h.sendView(chatID, text, kb)
	}
}

// handleSearch opens the card of an exact headword, otherwise it runs a fuzzy
// search over words, definitions, examples and synonyms.
func (h *Handler) handleSearch(query string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if query == "" {
			return h.send(newHTMLMessage(chatID, msgSearchUsage))
		}
		if w, err := h.svc.Words.GetByWord(query); err == nil {
			return h.sendView(chatID, formatWordCard(w, nil), buildWordCardKeyboard(w))
		}
		page := h.svc.Search.Search(query)
		return h.sendView(chatID, formatSearchResults(page), buildSearchKeyboard(page))
	}
}

// handleFlashcards reopens the current deck or shows the group picker.
func (h *Handler) handleFlashcards(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if deck, err := h.svc.Flashcards.Current(userID); err == nil {
			return h.sendView(chatID, formatFlashcard(deck), buildFlashcardKeyboard(deck))
		}

		text, kb := h.renderFlashcardGroups()
		return h.sendView(chatID, text, kb)
	}
}

// handleQuiz resumes an unfinished quiz or shows the quiz setup screen.
func (h *Handler) handleQuiz(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if run, err := h.svc.Quiz.Current(userID); err == nil && run.Phase == entities.QuizInProgress {
			v := renderQuiz(run)
			return h.sendView(chatID, v.text, v.kb)
		}

		text, kb, err := h.renderQuizSetup(ctx, userID)
		if err != nil {
			return err
		}
		return h.sendView(chatID, text, kb)
	}
}

// handleCount stores a custom quiz word count.
func (h *Handler) handleCount(userID int64, raw string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		us, err := h.svc.Settings.SetWordCount(ctx, userID, raw)
		if err != nil {
			return err
		}
		count, limit := h.svc.Settings.WordCount(us)
		text := fmt.Sprintf("Quiz length set to <b>%d</b> words (max %d for the selected groups).", count, limit)
		kb := markup(tgbotapi.NewInlineKeyboardRow(button("▶️ Start quiz", buildQuizSetupCallback(setupStart))))
		return h.sendView(chatID, text, kb)
	}
}

// handleMatch shows the matching-game setup screen.
func (h *Handler) handleMatch(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if game, err := h.svc.Match.Current(userID); err == nil && game.Phase != entities.MatchComplete {
			v := renderMatch(game)
			return h.sendView(chatID, v.text, v.kb)
		}

		text, kb, err := h.renderMatchSetup(ctx, userID)
		if err != nil {
			return err
		}
		return h.sendView(chatID, text, kb)
	}
}

func (h *Handler) handleStats(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		stats, err := h.svc.Stats.Summary(ctx, userID, "")
		if err != nil {
			return err
		}
		return h.sendView(chatID, formatStats(stats), buildStatsKeyboard(stats.RecentType))
	}
}

func (h *Handler) handleSettings(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		us, err := h.svc.Settings.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		return h.sendView(chatID, formatSettings(us), buildSettingsKeyboard(us))
	}
}

func (h *Handler) handleResetPrompt() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendView(chatID, msgResetPrompt, buildResetConfirmKeyboard())
	}
}
