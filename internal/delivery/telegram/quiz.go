package telegram

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/service"
)

func (h *Handler) renderQuizSetup(ctx context.Context, userID int64) (string, *tgbotapi.InlineKeyboardMarkup, error) {
	us, err := h.svc.Settings.GetOrCreate(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	text, kb := h.quizSetupView(us)
	return text, kb, nil
}

func (h *Handler) quizSetupView(us *entities.UserSettings) (string, *tgbotapi.InlineKeyboardMarkup) {
	count, limit := h.svc.Settings.WordCount(us)
	text := formatQuizSetup(us, count, limit)
	kb := buildQuizSetupKeyboard(us, h.svc.Words.GroupNumbers(), count, limit)
	return text, kb
}

// renderQuiz shows the current question, the results or a reviewed question.
func renderQuiz(run entities.QuizRun) view {
	switch run.Phase {
	case entities.QuizInProgress:
		return view{text: formatQuizQuestion(run), kb: buildQuizAnswerKeyboard(run)}
	case entities.QuizReviewing:
		return view{text: formatQuizReview(run), kb: buildQuizReviewKeyboard()}
	default:
		return view{text: formatQuizResults(run), kb: buildQuizResultKeyboard(run)}
	}
}

func (h *Handler) handleQuizSetupCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (view, error) {
	userID := cb.From.ID

	var (
		us  *entities.UserSettings
		err error
	)

	switch cd.param(0) {
	case setupMenu:
		us, err = h.svc.Settings.GetOrCreate(ctx, userID)
	case setupGroup:
		group, ok := cd.intParam(1)
		if !ok {
			return view{}, nil
		}
		us, err = h.svc.Settings.ToggleGroup(ctx, userID, group)
	case setupCount:
		us, err = h.svc.Settings.SetWordCount(ctx, userID, cd.param(1))
	case setupType:
		us, err = h.svc.Settings.SetQuizType(ctx, userID, entities.QuizType(cd.param(1)))
	case setupStart:
		return h.startQuiz(ctx, userID)
	case setupQuit:
		h.svc.Quiz.Abandon(userID)
		text, kb, err := h.renderQuizSetup(ctx, userID)
		return view{text: text, kb: kb}, err
	default:
		return view{}, nil
	}
	if err != nil {
		return view{}, err
	}

	text, kb := h.quizSetupView(us)
	return view{text: text, kb: kb}, nil
}

func (h *Handler) startQuiz(ctx context.Context, userID int64) (view, error) {
	us, err := h.svc.Settings.GetOrCreate(ctx, userID)
	if err != nil {
		return view{}, err
	}
	count, _ := h.svc.Settings.WordCount(us)

	run, err := h.svc.Quiz.StartQuiz(ctx, userID, service.QuizParams{
		Groups: us.SelectedGroups,
		Count:  count,
		Type:   us.QuizType,
	})
	if err != nil {
		return view{}, err
	}

	if len(run.Questions) < count {
		h.logger.Debug("quiz shorter than requested",
			zap.Int64("user_id", userID),
			zap.Int("requested", count),
			zap.Int("questions", len(run.Questions)),
		)
	}

	return renderQuiz(run), nil
}

func (h *Handler) handleQuizAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (view, error) {
	sessionID, question, option, ok := parseQuizAnswer(cd)
	if !ok {
		return view{}, nil
	}

	run, err := h.svc.Quiz.Answer(ctx, cb.From.ID, sessionID, question, option)
	if err != nil {
		return view{}, err
	}

	v := renderQuiz(run)
	v.toast = formatAnswerFeedback(run, question)
	return v, nil
}

func (h *Handler) handleQuizReviewCallback(_ context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (view, error) {
	idx, err := strconv.Atoi(cd.param(0))
	if err != nil {
		return view{}, nil
	}

	run, err := h.svc.Quiz.Review(cb.From.ID, idx)
	if err != nil {
		return view{}, err
	}
	return renderQuiz(run), nil
}

func (h *Handler) handleQuizBackCallback(_ context.Context, cb *tgbotapi.CallbackQuery, _ callbackData) (view, error) {
	run, err := h.svc.Quiz.BackToResults(cb.From.ID)
	if err != nil {
		return view{}, err
	}
	return renderQuiz(run), nil
}
