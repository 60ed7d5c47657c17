package telegram

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

func (h *Handler) renderFlashcardGroups() (string, *tgbotapi.InlineKeyboardMarkup) {
	kb := buildGroupPickerKeyboard(h.svc.Words.GroupNumbers(), func(g int) string {
		return buildFlashcardCallback(flashOpen, strconv.Itoa(g))
	})
	return formatGroupPicker("🗂 Flashcards"), kb
}

func (h *Handler) handleFlashcardCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (view, error) {
	userID := cb.From.ID

	var (
		deck entities.FlashcardDeck
		err  error
	)

	switch cd.param(0) {
	case flashGroups:
		text, kb := h.renderFlashcardGroups()
		return view{text: text, kb: kb}, nil

	case flashOpen:
		group, ok := cd.intParam(1)
		if !ok {
			return view{}, nil
		}
		us, err := h.svc.Settings.GetOrCreate(ctx, userID)
		if err != nil {
			return view{}, err
		}
		deck, err = h.svc.Flashcards.Open(userID, group, us.ShuffleFlashcards)
		if err != nil {
			return view{}, err
		}
		// Opened from a daily word message: keep it and start a new one.
		if cb.Message.Text != "" && !isFlashcardMessage(cb.Message) {
			return view{}, h.sendView(cb.Message.Chat.ID, formatFlashcard(deck), buildFlashcardKeyboard(deck))
		}

	case flashNext:
		deck, err = h.svc.Flashcards.Next(userID)
	case flashPrev:
		deck, err = h.svc.Flashcards.Prev(userID)
	case flashFlip:
		deck, err = h.svc.Flashcards.Flip(userID)
	case flashRestart:
		deck, err = h.svc.Flashcards.Restart(userID)

	case flashShuffle:
		us, err := h.svc.Settings.ToggleShuffle(ctx, userID)
		if err != nil {
			return view{}, err
		}
		deck, err = h.svc.Flashcards.SetShuffle(userID, us.ShuffleFlashcards)
		if err != nil {
			return view{}, err
		}

	default:
		return view{}, nil
	}
	if err != nil {
		return view{}, err
	}

	return view{text: formatFlashcard(deck), kb: buildFlashcardKeyboard(deck)}, nil
}

// isFlashcardMessage reports whether msg is the group picker or a card.
func isFlashcardMessage(msg *tgbotapi.Message) bool {
	return strings.HasPrefix(msg.Text, "🗂")
}
