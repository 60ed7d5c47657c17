package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/gre-vocab-bot/internal/search"
)

const searchHeaderPrefix = "🔎 "

func (h *Handler) renderWordGroups() (string, *tgbotapi.InlineKeyboardMarkup) {
	kb := buildGroupPickerKeyboard(h.svc.Words.GroupNumbers(), func(g int) string {
		return buildWordListCallback(g, 0)
	})
	return formatGroupPicker("📚 Word list"), kb
}

func (h *Handler) handleGroupsCallback(context.Context, *tgbotapi.CallbackQuery, callbackData) (view, error) {
	text, kb := h.renderWordGroups()
	return view{text: text, kb: kb}, nil
}

func (h *Handler) handleWordListCallback(_ context.Context, _ *tgbotapi.CallbackQuery, cd callbackData) (view, error) {
	group, ok1 := cd.intParam(0)
	page, ok2 := cd.intParam(1)
	if !ok1 || !ok2 {
		return view{}, nil
	}

	p, err := h.svc.Words.GroupPage(group, page, wordsPerPage)
	if err != nil {
		return view{}, err
	}
	return view{text: formatWordPage(p), kb: buildWordPageKeyboard(p)}, nil
}

// handleWordCallback opens a word card. Cards opened from search results are
// sent as new messages with the matched spans underlined, so the result
// list stays on screen.
func (h *Handler) handleWordCallback(_ context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (view, error) {
	slug := cd.param(0)
	w, err := h.svc.Words.GetBySlug(slug)
	if err != nil {
		return view{}, err
	}

	if q, ok := searchQuery(cb.Message.Text); ok {
		text := formatWordCard(w, h.matchesFor(q, slug))
		return view{}, h.sendView(cb.Message.Chat.ID, text, buildWordCardKeyboard(w))
	}
	return view{text: formatWordCard(w, nil), kb: buildWordCardKeyboard(w)}, nil
}

// matchesFor repeats the search q to find the matched spans of a word.
func (h *Handler) matchesFor(q, slug string) []search.Match {
	for _, r := range h.svc.Search.Search(q).Results {
		if r.Word.Slug == slug {
			return r.Matches
		}
	}
	return nil
}

// searchQuery extracts the query from the header line of a search results
// message, e.g. "🔎 terse: 2 found".
func searchQuery(text string) (string, bool) {
	line, _, _ := strings.Cut(text, "\n")
	rest, ok := strings.CutPrefix(line, searchHeaderPrefix)
	if !ok {
		return "", false
	}
	i := strings.LastIndex(rest, ":")
	if i <= 0 {
		return "", false
	}
	return rest[:i], true
}
