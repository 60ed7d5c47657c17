package telegram

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

// Callback action constants. Telegram limits callback data to 64 bytes, so
// actions are short.
const (
	actionNoop       = "noop"
	actionWordList   = "wl"  // wl:<group>:<page>
	actionWord       = "w"   // w:<slug>
	actionGroups     = "wg"  // back to the group picker
	actionFlashcards = "fc"  // fc:<sub>[:<group>]
	actionQuizSetup  = "qs"  // qs:<sub>[:<value>]
	actionQuizAnswer = "qa"  // qa:<session>:<question>:<option>
	actionQuizReview = "qr"  // qr:<question>
	actionQuizBack   = "qb"  // back to quiz results
	actionMatchSetup = "ms"  // ms:<sub>[:<value>]
	actionMatchTile  = "mt"  // mt:<game>:<tile>
	actionSettings   = "st"  // st:<sub>
	actionReset      = "rs"  // rs:<sub>
	actionStats      = "sts" // refresh statistics
)

// Flashcard sub-actions.
const (
	flashOpen    = "open"
	flashGroups  = "groups"
	flashPrev    = "prev"
	flashNext    = "next"
	flashFlip    = "flip"
	flashRestart = "restart"
	flashShuffle = "shuffle"
)

// Quiz and matching-game setup sub-actions.
const (
	setupMenu  = "menu"
	setupGroup = "group"
	setupCount = "count"
	setupType  = "type"
	setupGrid  = "grid"
	setupStart = "start"
	setupQuit  = "quit"
)

// Settings sub-actions.
const (
	settingsMenu      = "menu"
	settingsDailyWord = "daily"
	settingsShuffle   = "shuffle"
)

const (
	resetAsk     = "ask"
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as an int.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	return n, err == nil
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildCallback(action string, params ...string) string {
	return callbackData{Action: action, Params: params}.encode()
}

func buildWordListCallback(group, page int) string {
	return buildCallback(actionWordList, strconv.Itoa(group), strconv.Itoa(page))
}

func buildWordCallback(slug string) string {
	return buildCallback(actionWord, slug)
}

func buildFlashcardCallback(sub string, value ...string) string {
	return buildCallback(actionFlashcards, append([]string{sub}, value...)...)
}

func buildQuizSetupCallback(sub string, value ...string) string {
	return buildCallback(actionQuizSetup, append([]string{sub}, value...)...)
}

// buildQuizAnswerCallback carries the session and question so that answers
// from an outdated keyboard can be rejected.
func buildQuizAnswerCallback(sessionID int64, question, option int) string {
	return buildCallback(actionQuizAnswer,
		strconv.FormatInt(sessionID, 10),
		strconv.Itoa(question),
		strconv.Itoa(option),
	)
}

func buildQuizReviewCallback(question int) string {
	return buildCallback(actionQuizReview, strconv.Itoa(question))
}

func buildMatchSetupCallback(sub string, value ...string) string {
	return buildCallback(actionMatchSetup, append([]string{sub}, value...)...)
}

func buildMatchTileCallback(gameID uuid.UUID, tile int) string {
	return buildCallback(actionMatchTile, gameID.String(), strconv.Itoa(tile))
}

func buildGridCallback(g entities.GridSize) string {
	return buildMatchSetupCallback(setupGrid, g.String())
}

func buildSettingsCallback(sub string) string {
	return buildCallback(actionSettings, sub)
}

// buildStatsCallback refreshes the statistics; an empty quizType shows all types.
func buildStatsCallback(quizType entities.QuizType) string {
	if quizType == "" {
		return buildCallback(actionStats)
	}
	return buildCallback(actionStats, string(quizType))
}

func buildResetCallback(sub string) string {
	return buildCallback(actionReset, sub)
}

// parseQuizAnswer extracts session id, question index and option index.
func parseQuizAnswer(cd callbackData) (sessionID int64, question, option int, ok bool) {
	if len(cd.Params) != 3 {
		return 0, 0, 0, false
	}
	sessionID, err := strconv.ParseInt(cd.Params[0], 10, 64)
	if err != nil {
		return 0, 0, 0, false
	}
	question, ok1 := cd.intParam(1)
	option, ok2 := cd.intParam(2)
	if !ok1 || !ok2 {
		return 0, 0, 0, false
	}
	return sessionID, question, option, true
}

// parseMatchTile extracts the game id and tile index.
func parseMatchTile(cd callbackData) (uuid.UUID, int, bool) {
	if len(cd.Params) != 2 {
		return uuid.Nil, 0, false
	}
	id, err := uuid.Parse(cd.Params[0])
	if err != nil {
		return uuid.Nil, 0, false
	}
	idx, ok := cd.intParam(1)
	return id, idx, ok
}
