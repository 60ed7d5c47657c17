package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/storage"
)

type QuizService struct {
	words    WordRepository
	quizRepo QuizRepository
	tr       Transactor
	gen      *QuestionGenerator
	runs     *storage.SessionStore[entities.QuizRun]
	limits   WordCountLimits
	logger   *zap.Logger
}

func NewQuizService(
	words WordRepository,
	quizRepo QuizRepository,
	tr Transactor,
	gen *QuestionGenerator,
	runs *storage.SessionStore[entities.QuizRun],
	limits WordCountLimits,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		words:    words,
		quizRepo: quizRepo,
		tr:       tr,
		gen:      gen,
		runs:     runs,
		limits:   limits,
		logger:   logger,
	}
}

// StartQuiz generates a new quiz and replaces any running one.
// A non-positive count means the default for the number of selected groups;
// larger counts are capped at the maximum.
func (s *QuizService) StartQuiz(ctx context.Context, userID int64, p QuizParams) (entities.QuizRun, error) {
	if len(p.Groups) == 0 {
		return entities.QuizRun{}, ErrNoGroupsSelected
	}
	if p.Count <= 0 {
		p.Count = s.limits.Default(len(p.Groups))
	}
	p.Count = min(p.Count, s.limits.Max(len(p.Groups)))

	questions, err := s.gen.Generate(s.words.GetAll(), p)
	if err != nil {
		return entities.QuizRun{}, err
	}
	if len(questions) == 0 {
		return entities.QuizRun{}, ErrNoQuestionsAvailable
	}

	session := entities.NewQuizSession(userID, p.Type, p.Groups, len(questions))
	err = s.tr.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.quizRepo.AbandonActiveSessions(ctx, userID); err != nil {
			return err
		}
		return s.quizRepo.CreateSession(ctx, session)
	})
	if err != nil {
		return entities.QuizRun{}, fmt.Errorf("start quiz: %w", err)
	}

	run := entities.NewQuizRun(session.ID, p.Type, questions)
	s.runs.Put(userID, run)

	s.logger.Info("quiz started",
		zap.Int64("user_id", userID),
		zap.Int64("session_id", session.ID),
		zap.String("quiz_type", string(p.Type)),
		zap.Int("questions", len(questions)),
	)

	return run, nil
}

// Current returns the running or finished quiz of the user.
func (s *QuizService) Current(userID int64) (entities.QuizRun, error) {
	run, ok := s.runs.Get(userID)
	if !ok {
		return entities.QuizRun{}, ErrNoActiveQuiz
	}
	return run, nil
}

// Answer records the option picked for question qIdx of session sessionID.
// Answers from outdated keyboards are rejected with ErrStaleQuestion.
func (s *QuizService) Answer(ctx context.Context, userID, sessionID int64, qIdx, optIdx int) (entities.QuizRun, error) {
	var (
		question entities.QuizQuestion
		option   string
	)

	next, err := s.runs.Update(userID, func(cur entities.QuizRun, ok bool) (entities.QuizRun, error) {
		if !ok || cur.SessionID != sessionID {
			return cur, ErrNoActiveQuiz
		}
		if cur.Phase != entities.QuizInProgress {
			return cur, entities.ErrQuizFinished
		}
		q, ok := cur.Question()
		if !ok || cur.Current != qIdx || optIdx < 0 || optIdx >= len(q.Options) {
			return cur, ErrStaleQuestion
		}

		question, option = q, q.Options[optIdx]
		return cur.Answer(option)
	})
	if err != nil {
		return next, err
	}

	// The quiz goes on even if history cannot be written.
	if err := s.persistAnswer(ctx, next, qIdx, question, option); err != nil {
		s.logger.Error("failed to persist quiz answer",
			zap.Int64("user_id", userID),
			zap.Int64("session_id", sessionID),
			zap.Error(err),
		)
	}

	return next, nil
}

func (s *QuizService) persistAnswer(ctx context.Context, run entities.QuizRun, qIdx int, q entities.QuizQuestion, option string) error {
	answer := entities.NewQuizAnswer(run.SessionID, qIdx, q.Prompt)
	answer.CheckAnswer(option, q.Correct)

	return s.tr.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.quizRepo.SaveAnswer(ctx, answer); err != nil {
			return err
		}
		if run.Phase != entities.QuizFinished {
			return nil
		}

		session := &entities.QuizSession{ID: run.SessionID, TotalQuestions: len(run.Questions)}
		session.Complete(run.Score())
		return s.quizRepo.CompleteSession(ctx, session)
	})
}

// Review shows a single question of a finished quiz.
func (s *QuizService) Review(userID int64, idx int) (entities.QuizRun, error) {
	return s.runs.Update(userID, func(cur entities.QuizRun, ok bool) (entities.QuizRun, error) {
		if !ok {
			return cur, ErrNoActiveQuiz
		}
		return cur.Review(idx)
	})
}

// BackToResults leaves the review view.
func (s *QuizService) BackToResults(userID int64) (entities.QuizRun, error) {
	return s.runs.Update(userID, func(cur entities.QuizRun, ok bool) (entities.QuizRun, error) {
		if !ok {
			return cur, ErrNoActiveQuiz
		}
		return cur.BackToResults(), nil
	})
}

// Abandon drops the in-memory quiz of the user.
func (s *QuizService) Abandon(userID int64) {
	s.runs.Delete(userID)
}
