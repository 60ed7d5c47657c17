package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/service"
)

const (
	groupsPerRow  = 4
	tileMatched   = "·"
	tileMaxLength = 20
)

func button(text, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

func markup(rows ...[]tgbotapi.InlineKeyboardButton) *tgbotapi.InlineKeyboardMarkup {
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// chunk lays buttons out in rows of n.
func chunk(buttons []tgbotapi.InlineKeyboardButton, n int) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for len(buttons) > 0 {
		k := min(n, len(buttons))
		rows = append(rows, buttons[:k])
		buttons = buttons[k:]
	}
	return rows
}

func checkbox(on bool, label string) string {
	if on {
		return "☑️ " + label
	}
	return "⬜ " + label
}

func radio(on bool, label string) string {
	if on {
		return "🔘 " + label
	}
	return "⚪ " + label
}

// buildGroupPickerKeyboard lists groups; data builds the callback for a group.
func buildGroupPickerKeyboard(groups []int, data func(group int) string) *tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(groups))
	for _, g := range groups {
		buttons = append(buttons, button(fmt.Sprintf("Group %d", g), data(g)))
	}
	return markup(chunk(buttons, groupsPerRow)...)
}

// buildWordPageKeyboard has one button per word and pagination.
func buildWordPageKeyboard(p service.WordPage) *tgbotapi.InlineKeyboardMarkup {
	words := make([]tgbotapi.InlineKeyboardButton, 0, len(p.Words))
	for _, w := range p.Words {
		words = append(words, button(w.Word, buildWordCallback(w.Slug)))
	}
	rows := chunk(words, 2)

	var nav []tgbotapi.InlineKeyboardButton
	if p.Page > 0 {
		nav = append(nav, button("◀️ Previous", buildWordListCallback(p.Group, p.Page-1)))
	}
	if p.Page < p.Pages-1 {
		nav = append(nav, button("Next ▶️", buildWordListCallback(p.Group, p.Page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("« Groups", actionGroups)))

	return markup(rows...)
}

func buildWordCardKeyboard(w *entities.Word) *tgbotapi.InlineKeyboardMarkup {
	return markup(tgbotapi.NewInlineKeyboardRow(
		button(fmt.Sprintf("« Group %d", w.Group), buildWordListCallback(w.Group, 0)),
	))
}

func buildSearchKeyboard(page service.SearchPage) *tgbotapi.InlineKeyboardMarkup {
	if len(page.Results) == 0 {
		return nil
	}
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(page.Results))
	for i, r := range page.Results {
		buttons = append(buttons, button(fmt.Sprintf("%d. %s", i+1, r.Word.Word), buildWordCallback(r.Word.Slug)))
	}
	return markup(chunk(buttons, 2)...)
}

func buildFlashcardKeyboard(deck entities.FlashcardDeck) *tgbotapi.InlineKeyboardMarkup {
	flip := "🔄 Flip"
	if deck.Flipped {
		flip = "🔄 Hide"
	}
	return markup(
		tgbotapi.NewInlineKeyboardRow(
			button("◀️", buildFlashcardCallback(flashPrev)),
			button(flip, buildFlashcardCallback(flashFlip)),
			button("▶️", buildFlashcardCallback(flashNext)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("⏮ Restart", buildFlashcardCallback(flashRestart)),
			button(checkbox(deck.Shuffled, "Shuffle"), buildFlashcardCallback(flashShuffle)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("« Groups", buildFlashcardCallback(flashGroups)),
		),
	)
}

// quizCountPresets returns the preset word counts offered for limit.
func quizCountPresets(limit int) []int {
	var out []int
	for _, n := range []int{5, 10, 20} {
		if n < limit {
			out = append(out, n)
		}
	}
	return append(out, limit)
}

func buildQuizSetupKeyboard(us *entities.UserSettings, groups []int, count, limit int) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	groupButtons := make([]tgbotapi.InlineKeyboardButton, 0, len(groups))
	for _, g := range groups {
		groupButtons = append(groupButtons, button(
			checkbox(us.HasGroup(g), strconv.Itoa(g)),
			buildQuizSetupCallback(setupGroup, strconv.Itoa(g)),
		))
	}
	rows = append(rows, chunk(groupButtons, groupsPerRow)...)

	if limit > 0 {
		var counts []tgbotapi.InlineKeyboardButton
		for _, n := range quizCountPresets(limit) {
			counts = append(counts, button(radio(n == count, strconv.Itoa(n)), buildQuizSetupCallback(setupCount, strconv.Itoa(n))))
		}
		rows = append(rows, counts)
	}

	for _, t := range entities.QuizTypes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(radio(us.QuizType == t, t.Label()), buildQuizSetupCallback(setupType, string(t))),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("▶️ Start quiz", buildQuizSetupCallback(setupStart))))
	return markup(rows...)
}

func buildQuizAnswerKeyboard(run entities.QuizRun) *tgbotapi.InlineKeyboardMarkup {
	q, ok := run.Question()
	if !ok {
		return nil
	}

	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for i, o := range q.Options {
		label := o
		if optionsInText(run.QuizType) {
			label = optionLetter(i)
		}
		buttons = append(buttons, button(label, buildQuizAnswerCallback(run.SessionID, run.Current, i)))
	}

	perRow := 1
	if optionsInText(run.QuizType) {
		perRow = len(buttons)
	}
	rows := chunk(buttons, max(perRow, 1))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("✖ Quit", buildQuizSetupCallback(setupQuit))))
	return markup(rows...)
}

// buildQuizResultKeyboard offers a review button for every wrong answer.
func buildQuizResultKeyboard(run entities.QuizRun) *tgbotapi.InlineKeyboardMarkup {
	var review []tgbotapi.InlineKeyboardButton
	for i := range run.Questions {
		if !run.IsCorrect(i) {
			review = append(review, button(fmt.Sprintf("Review %d", i+1), buildQuizReviewCallback(i)))
		}
	}

	rows := chunk(review, groupsPerRow)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		button("🔁 New quiz", buildQuizSetupCallback(setupStart)),
		button("⚙️ Setup", buildQuizSetupCallback(setupMenu)),
	))
	return markup(rows...)
}

func buildQuizReviewKeyboard() *tgbotapi.InlineKeyboardMarkup {
	return markup(tgbotapi.NewInlineKeyboardRow(button("« Back to results", actionQuizBack)))
}

func buildMatchSetupKeyboard(us *entities.UserSettings, groups []int) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	groupButtons := make([]tgbotapi.InlineKeyboardButton, 0, len(groups))
	for _, g := range groups {
		groupButtons = append(groupButtons, button(
			checkbox(us.HasGroup(g), strconv.Itoa(g)),
			buildMatchSetupCallback(setupGroup, strconv.Itoa(g)),
		))
	}
	rows = append(rows, chunk(groupButtons, groupsPerRow)...)

	grids := make([]tgbotapi.InlineKeyboardButton, 0, len(entities.GridSizes))
	for _, g := range entities.GridSizes {
		grids = append(grids, button(radio(us.GridSize == g, g.String()), buildGridCallback(g)))
	}
	rows = append(rows, grids)

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("▶️ Start game", buildMatchSetupCallback(setupStart))))
	return markup(rows...)
}

// tileLabel renders one board tile.
func tileLabel(g entities.MatchGame, i int) string {
	if g.Matched[i] {
		return tileMatched
	}

	word := truncate(g.Tiles[i].Word, tileMaxLength)
	if !g.IsSelected(i) {
		return word
	}
	switch {
	case g.Phase == entities.MatchResolving && g.Pending == entities.OutcomeMatch:
		return "✅ " + word
	case g.Phase == entities.MatchResolving:
		return "❌ " + word
	default:
		return "👉 " + word
	}
}

// buildMatchBoardKeyboard lays the tiles out in grid rows of Cols buttons.
func buildMatchBoardKeyboard(g entities.MatchGame) *tgbotapi.InlineKeyboardMarkup {
	tiles := make([]tgbotapi.InlineKeyboardButton, 0, len(g.Tiles))
	for i := range g.Tiles {
		data := buildMatchTileCallback(g.ID, i)
		if g.Matched[i] {
			data = actionNoop
		}
		tiles = append(tiles, button(tileLabel(g, i), data))
	}

	cols := g.Grid.Cols
	if cols < 1 {
		cols = len(tiles)
	}
	rows := chunk(tiles, max(cols, 1))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		button("🔄 New game", buildMatchSetupCallback(setupStart)),
		button("✖ Quit", buildMatchSetupCallback(setupQuit)),
	))
	return markup(rows...)
}

func buildMatchCompleteKeyboard() *tgbotapi.InlineKeyboardMarkup {
	return markup(tgbotapi.NewInlineKeyboardRow(
		button("🔁 Play again", buildMatchSetupCallback(setupStart)),
		button("⚙️ Setup", buildMatchSetupCallback(setupMenu)),
	))
}

func buildSettingsKeyboard(us *entities.UserSettings) *tgbotapi.InlineKeyboardMarkup {
	return markup(
		tgbotapi.NewInlineKeyboardRow(
			button(checkbox(us.DailyWord, "Daily word"), buildSettingsCallback(settingsDailyWord)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button(checkbox(us.ShuffleFlashcards, "Shuffle flashcards"), buildSettingsCallback(settingsShuffle)),
		),
		tgbotapi.NewInlineKeyboardRow(
			button("🗑 Reset history", buildResetCallback(resetAsk)),
		),
	)
}

// buildStatsKeyboard offers a quiz type filter for the recent sessions.
func buildStatsKeyboard(active entities.QuizType) *tgbotapi.InlineKeyboardMarkup {
	filters := []tgbotapi.InlineKeyboardButton{button(radio(active == "", "All"), buildStatsCallback(""))}
	for _, t := range entities.QuizTypes {
		filters = append(filters, button(radio(active == t, string(t)), buildStatsCallback(t)))
	}

	return markup(
		filters,
		tgbotapi.NewInlineKeyboardRow(
			button("🔄 Refresh", buildStatsCallback(active)),
			button("📝 Quiz", buildQuizSetupCallback(setupMenu)),
		),
	)
}

func buildResetConfirmKeyboard() *tgbotapi.InlineKeyboardMarkup {
	return markup(tgbotapi.NewInlineKeyboardRow(
		button("Yes, reset", buildResetCallback(resetConfirm)),
		button("Cancel", buildResetCallback(resetCancel)),
	))
}

func buildDailyWordKeyboard(w *entities.Word) *tgbotapi.InlineKeyboardMarkup {
	return markup(tgbotapi.NewInlineKeyboardRow(
		button("📝 Quiz", buildQuizSetupCallback(setupMenu)),
		button(fmt.Sprintf("🗂 Group %d", w.Group), buildFlashcardCallback(flashOpen, strconv.Itoa(w.Group))),
	))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
