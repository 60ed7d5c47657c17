// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/search"
	"github.com/aliskhannn/gre-vocab-bot/internal/service"
)

// Error messages.
const (
	msgInternalError      = "Something went wrong. Please try again later."
	msgUnknownCommand     = "Unknown command. Send /help to see what I can do."
	msgNoGroupsSelected   = "Select at least one word group first."
	msgNoQuestions        = "No questions could be built from the selected groups. Try another quiz type or more groups."
	msgNoPairs            = "The selected groups have no synonym pairs. Try adding more groups."
	msgNoActiveQuiz       = "This quiz is no longer active. Start a new one with /quiz."
	msgNoActiveGame       = "This game is no longer active. Start a new one with /match."
	msgNoActiveDeck       = "This deck is no longer open. Use /flashcards to pick a group."
	msgStaleQuestion      = "That question was already answered."
	msgInvalidWordCount   = "Send a number, for example: /count 15"
	msgWordNotFound       = "Word not found."
	msgGroupNotFound      = "Group not found."
	msgSearchUsage        = "Send a word, a definition fragment or a synonym to search, for example: /search terse"
	msgNothingFound       = "Nothing found for <b>%s</b>."
	msgResetPrompt        = "<b>Reset history?</b>\n\nQuiz results, game results and settings will be deleted."
	msgResetDone          = "Your history and settings have been reset."
	msgResetCancelled     = "Reset cancelled."
	msgDailyWordEnabled   = "You will receive a word every day."
	msgDailyWordDisabled  = "Daily words are turned off."
	msgCorrect            = "✅ Correct!"
	msgIncorrectWithRight = "❌ Correct answer: %s"
)

const (
	wordsPerPage     = 8
	searchSnippetLen = 80
)

const msgWelcome = `<b>GRE Vocabulary</b>

Enhance your vocabulary with organized word groups, interactive flashcards and practice quizzes.

/words - browse the word list by group
/search - find a word, definition or synonym
/flashcards - study one group card by card
/quiz - multiple choice quiz
/match - synonym matching game
/stats - your results
/settings - daily word and flashcard options`

const msgHelp = `<b>Commands</b>

/words - browse words by group
/search &lt;text&gt; - fuzzy search; plain messages are searched too
/flashcards - flip through a group
/quiz - set up and start a quiz
/count &lt;n&gt; - set a custom number of quiz words
/match - synonym matching game
/stats - quiz and game statistics
/settings - daily word, flashcard shuffle
/reset - delete your history`

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	return msg
}

// newHTMLEdit creates an edit with HTML parse mode.
func newHTMLEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true
	return edit
}

func esc(s string) string { return html.EscapeString(s) }

// highlight escapes value and underlines the byte span [start, end).
func highlight(value string, start, end int) string {
	if start < 0 || end > len(value) || start >= end {
		return esc(value)
	}
	return esc(value[:start]) + "<u>" + esc(value[start:end]) + "</u>" + esc(value[end:])
}

// highlighter returns a function rendering a field value with the matched
// span underlined, or plainly escaped when the value did not match.
func highlighter(matches []search.Match) func(field search.Field, value string) string {
	return func(field search.Field, value string) string {
		for _, m := range matches {
			if m.Field == field && m.Value == value {
				return highlight(value, m.Start, m.End)
			}
		}
		return esc(value)
	}
}

// formatWordCard renders every definition of a word. Spans found by a
// search are underlined.
func formatWordCard(w *entities.Word, matches []search.Match) string {
	hl := highlighter(matches)

	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b>  <i>group %d</i>\n", hl(search.FieldWord, w.Word), w.Group)

	for i, d := range w.Definitions {
		sb.WriteString("\n")
		if len(w.Definitions) > 1 {
			fmt.Fprintf(&sb, "%d. ", i+1)
		}
		if d.PartOfSpeech != "" {
			fmt.Fprintf(&sb, "<i>%s</i> ", esc(d.PartOfSpeech))
		}
		sb.WriteString(hl(search.FieldDefinition, d.Definition))
		sb.WriteString("\n")

		if ex := d.ExampleText(); ex != "" {
			fmt.Fprintf(&sb, "<blockquote>%s</blockquote>\n", hl(search.FieldExample, ex))
		}
		if len(d.Synonyms) > 0 {
			syns := make([]string, 0, len(d.Synonyms))
			for _, s := range d.Synonyms {
				syns = append(syns, hl(search.FieldSynonym, s))
			}
			fmt.Fprintf(&sb, "<b>Synonyms:</b> %s\n", strings.Join(syns, ", "))
		}
	}

	if w.PronunciationURL != "" {
		fmt.Fprintf(&sb, "\n<a href=\"%s\">🔊 Pronunciation</a>", esc(w.PronunciationURL))
	}

	return strings.TrimRight(sb.String(), "\n")
}

func formatGroupPicker(title string) string {
	return fmt.Sprintf("<b>%s</b>\n\nChoose a word group:", esc(title))
}

func formatWordPage(p service.WordPage) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>Group %d</b>  (%d words)\n\n", p.Group, p.Total)
	for i, w := range p.Words {
		n := p.Page*wordsPerPage + i + 1
		fmt.Fprintf(&sb, "%d. <b>%s</b>", n, esc(w.Word))
		if d, ok := w.FirstDefinition(); ok {
			fmt.Fprintf(&sb, " - %s", esc(d.Definition))
		}
		sb.WriteString("\n")
	}
	if p.Pages > 1 {
		fmt.Fprintf(&sb, "\nPage %d of %d", p.Page+1, p.Pages)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// snippet cuts value around the matched span so long definitions stay short.
func snippet(m search.Match) string {
	if len(m.Value) <= searchSnippetLen {
		return highlight(m.Value, m.Start, m.End)
	}

	from := max(0, m.Start-searchSnippetLen/2)
	to := min(len(m.Value), from+searchSnippetLen)
	for from > 0 && !isRuneStart(m.Value[from]) {
		from--
	}
	for to < len(m.Value) && !isRuneStart(m.Value[to]) {
		to++
	}

	out := highlight(m.Value[from:to], m.Start-from, min(m.End, to)-from)
	if from > 0 {
		out = "…" + out
	}
	if to < len(m.Value) {
		out += "…"
	}
	return out
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

func formatSearchResults(page service.SearchPage) string {
	if len(page.Results) == 0 {
		return fmt.Sprintf(msgNothingFound, esc(page.Query))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s<b>%s</b>: %d found\n", searchHeaderPrefix, esc(page.Query), page.Total)
	for i, r := range page.Results {
		fmt.Fprintf(&sb, "\n%d. <b>%s</b>", i+1, esc(r.Word.Word))
		if len(r.Matches) > 0 && r.Matches[0].Field != search.FieldWord {
			m := r.Matches[0]
			fmt.Fprintf(&sb, "\n   <i>%s:</i> %s", m.Field, snippet(m))
		}
	}
	if page.Total > len(page.Results) {
		fmt.Fprintf(&sb, "\n\nShowing top %d of %d.", len(page.Results), page.Total)
	}
	return sb.String()
}

func formatFlashcard(deck entities.FlashcardDeck) string {
	w, err := deck.Card()
	if err != nil {
		return "This group has no words."
	}
	pos, total := deck.Progress()

	header := fmt.Sprintf("🗂 Group %d · card %d of %d", deck.Group, pos, total)
	if deck.Shuffled {
		header += " · shuffled"
	}

	if !deck.Flipped {
		return fmt.Sprintf("%s\n\n<b>%s</b>\n\n<i>Tap Flip to see the meaning.</i>", header, esc(w.Word))
	}
	return header + "\n\n" + formatWordCard(w, nil)
}

func quizInstruction(t entities.QuizType) string {
	switch t {
	case entities.QuizTypeSynonym:
		return "Pick a synonym of"
	case entities.QuizTypeDefinition:
		return "Pick the definition of"
	case entities.QuizTypeReverse:
		return "Which word means"
	default:
		return ""
	}
}

// optionsInText reports whether the options are too long for buttons and
// are listed in the message instead.
func optionsInText(t entities.QuizType) bool {
	return t == entities.QuizTypeDefinition
}

var optionLetters = []string{"A", "B", "C", "D", "E", "F"}

func optionLetter(i int) string {
	if i < len(optionLetters) {
		return optionLetters[i]
	}
	return fmt.Sprint(i + 1)
}

func formatQuizSetup(us *entities.UserSettings, count, limit int) string {
	groups := "none"
	if len(us.SelectedGroups) > 0 {
		groups = joinInts(us.SelectedGroups)
	}

	return fmt.Sprintf(
		"<b>📝 Quiz setup</b>\n\n"+
			"<b>Groups:</b> %s\n"+
			"<b>Questions:</b> %d (max %d, /count to change)\n"+
			"<b>Type:</b> %s",
		groups, count, limit, esc(us.QuizType.Label()),
	)
}

func formatQuizQuestion(run entities.QuizRun) string {
	q, ok := run.Question()
	if !ok {
		return msgNoActiveQuiz
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>Question %d of %d</b>\n\n%s\n<b>%s</b>",
		run.Current+1, len(run.Questions), quizInstruction(run.QuizType), esc(q.Prompt))
	if run.QuizType == entities.QuizTypeReverse {
		sb.WriteString("?")
	}

	if optionsInText(run.QuizType) {
		sb.WriteString("\n")
		for i, o := range q.Options {
			fmt.Fprintf(&sb, "\n<b>%s)</b> %s", optionLetter(i), esc(o))
		}
	}
	return sb.String()
}

func formatAnswerFeedback(run entities.QuizRun, idx int) string {
	if run.IsCorrect(idx) {
		return msgCorrect
	}
	return fmt.Sprintf(msgIncorrectWithRight, run.Questions[idx].Correct)
}

func formatQuizResults(run entities.QuizRun) string {
	score := run.Score()
	total := len(run.Questions)
	percent := 0.0
	if total > 0 {
		percent = float64(score) * 100 / float64(total)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>🏁 Quiz complete</b>\n%s\n\n<b>Score: %d / %d</b> (%.0f%%)\n",
		esc(run.QuizType.Label()), score, total, percent)

	for i, q := range run.Questions {
		answer, _ := run.AnswerText(i)
		if run.IsCorrect(i) {
			fmt.Fprintf(&sb, "\n%d. ✅ %s: %s", i+1, esc(q.Prompt), esc(answer))
			continue
		}
		fmt.Fprintf(&sb, "\n%d. ❌ %s\n   your answer: %s\n   correct: <b>%s</b>",
			i+1, esc(q.Prompt), esc(answer), esc(q.Correct))
		if q.Explanation != "" {
			fmt.Fprintf(&sb, "\n   <i>%s</i>", esc(q.Explanation))
		}
	}
	return sb.String()
}

func formatQuizReview(run entities.QuizRun) string {
	idx := run.ReviewIndex
	if idx < 0 || idx >= len(run.Questions) {
		return formatQuizResults(run)
	}
	q := run.Questions[idx]
	answer, _ := run.AnswerText(idx)

	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>Review: question %d of %d</b>\n\n%s\n<b>%s</b>\n",
		idx+1, len(run.Questions), quizInstruction(run.QuizType), esc(q.Prompt))
	for _, o := range q.Options {
		mark := "▫️"
		switch {
		case o == q.Correct:
			mark = "✅"
		case o == answer:
			mark = "❌"
		}
		fmt.Fprintf(&sb, "\n%s %s", mark, esc(o))
	}
	if q.Explanation != "" {
		fmt.Fprintf(&sb, "\n\n<i>%s</i>", esc(q.Explanation))
	}
	return sb.String()
}

func formatMatchSetup(us *entities.UserSettings) string {
	groups := "none"
	if len(us.SelectedGroups) > 0 {
		groups = joinInts(us.SelectedGroups)
	}
	return fmt.Sprintf(
		"<b>🧩 Matching game</b>\n\nMatch each word with its synonym.\n\n"+
			"<b>Groups:</b> %s\n<b>Grid:</b> %s",
		groups, us.GridSize,
	)
}

func formatMatchBoard(g entities.MatchGame) string {
	var status string
	switch g.Phase {
	case entities.MatchResolving:
		if g.Pending == entities.OutcomeMatch {
			status = "✅ Match!"
		} else {
			status = "❌ Not a pair"
		}
	case entities.MatchOneSelected:
		status = "Now pick its synonym."
	default:
		status = "Pick a word."
	}

	return fmt.Sprintf("<b>🧩 Matching game</b>\n\nPairs: %d / %d · attempts: %d · streak: %d\n\n%s",
		g.MatchedCount()/2, g.PairCount(), g.Attempts, g.Streak, status)
}

func formatMatchComplete(g entities.MatchGame) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>🎉 All pairs matched!</b>\n\n"+
		"<b>Pairs:</b> %d\n<b>Attempts:</b> %d\n<b>Best streak:</b> %d\n",
		g.PairCount(), g.Attempts, g.BestStreak)

	matched := make([]string, 0, g.PairCount())
	seen := make(map[string]bool, len(g.Tiles))
	for _, t := range g.Tiles {
		if seen[t.Word] || seen[t.Pair] {
			continue
		}
		seen[t.Word], seen[t.Pair] = true, true
		matched = append(matched, esc(t.Word)+" ↔ "+esc(t.Pair))
	}
	fmt.Fprintf(&sb, "\n<b>Matched:</b>\n%s\n", strings.Join(matched, "\n"))

	if mistakes := g.MistakeList(); len(mistakes) > 0 {
		sb.WriteString("\n<b>Mixed up:</b>")
		for _, m := range mistakes {
			fmt.Fprintf(&sb, "\n%s ≠ %s", esc(m.A), esc(m.B))
			if m.Count > 1 {
				fmt.Fprintf(&sb, " (×%d)", m.Count)
			}
		}
	} else {
		sb.WriteString("\nNo mistakes. 👏")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatStats(s entities.UserStats) string {
	var sb strings.Builder
	sb.WriteString("<b>📊 Your statistics</b>\n\n<b>Quizzes</b>\n")
	if s.Quiz.Sessions == 0 {
		sb.WriteString("No finished quizzes yet.\n")
	} else {
		fmt.Fprintf(&sb, "Completed: %d\nAccuracy: %.0f%% (%d of %d)\nAverage score: %.0f%%\nBest score: %.0f%%\n",
			s.Quiz.Sessions, s.Quiz.Accuracy(), s.Quiz.Correct, s.Quiz.Questions,
			s.Quiz.AverageScore, s.Quiz.BestScore)
	}

	switch {
	case len(s.Recent) > 0 && s.RecentType != "":
		fmt.Fprintf(&sb, "\n<b>Recent · %s</b>\n", esc(s.RecentType.Label()))
	case len(s.Recent) > 0:
		sb.WriteString("\n<b>Recent</b>\n")
	case s.RecentType != "":
		fmt.Fprintf(&sb, "\nNo finished quizzes of type <b>%s</b> yet.\n", esc(s.RecentType.Label()))
	}
	for _, r := range s.Recent {
		fmt.Fprintf(&sb, "%s · %s · %d/%d (%.0f%%)\n",
			r.CompletedAt.Format("Jan 2"), esc(string(r.QuizType)), r.Correct, r.Total, r.Percent())
	}

	sb.WriteString("\n<b>Matching games</b>\n")
	if s.Match.Games == 0 {
		sb.WriteString("No finished games yet.\n")
	} else {
		fmt.Fprintf(&sb, "Played: %d\nBest streak: %d\nAttempts per pair: %.2f\n",
			s.Match.Games, s.Match.BestStreak, s.Match.AverageAttempts)
	}

	if len(s.TopMistakes) > 0 {
		sb.WriteString("\n<b>Most confused pairs</b>\n")
		for _, m := range s.TopMistakes {
			fmt.Fprintf(&sb, "%s ≠ %s (×%d)\n", esc(m.A), esc(m.B), m.Count)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatSettings(us *entities.UserSettings) string {
	return fmt.Sprintf(
		"<b>⚙️ Settings</b>\n\n"+
			"📬 <b>Daily word:</b> %s\n"+
			"🔀 <b>Shuffle flashcards:</b> %s\n"+
			"📝 <b>Quiz type:</b> %s\n"+
			"🧩 <b>Grid:</b> %s",
		formatBool(us.DailyWord),
		formatBool(us.ShuffleFlashcards),
		esc(us.QuizType.Label()),
		us.GridSize,
	)
}

func formatDailyWord(p entities.DailyWordPayload) string {
	text := "<b>📬 Word of the day</b>\n\n" + formatWordCard(p.Word, nil)
	if p.Stats.Sessions > 0 {
		text += fmt.Sprintf("\n\nQuiz accuracy so far: %.0f%%", p.Stats.Accuracy())
	}
	return text
}

func formatBool(b bool) string {
	if b {
		return "on ✅"
	}
	return "off ❌"
}

func joinInts(xs []int) string {
	parts := make([]string, 0, len(xs))
	for _, x := range xs {
		parts = append(parts, fmt.Sprint(x))
	}
	return strings.Join(parts, ", ")
}
