package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/storage"
)

type quizFixture struct {
	svc  *QuizService
	repo *fakeQuizRepo
	tr   *fakeTransactor
}

func newQuizFixture(t *testing.T) quizFixture {
	repo := &fakeQuizRepo{}
	tr := &fakeTransactor{}
	svc := NewQuizService(
		testWords(t),
		repo,
		tr,
		NewQuestionGenerator(rand.New(rand.NewSource(7))),
		storage.NewSessionStore[entities.QuizRun](16, time.Hour),
		DefaultWordCountLimits,
		nopLogger(),
	)
	return quizFixture{svc: svc, repo: repo, tr: tr}
}

func answerAll(t *testing.T, svc *QuizService, userID int64, run entities.QuizRun, correct bool) entities.QuizRun {
	t.Helper()
	for i, q := range run.Questions {
		opt := q.CorrectIndex()
		if !correct {
			opt = (opt + 1) % len(q.Options)
		}
		var err error
		run, err = svc.Answer(context.Background(), userID, run.SessionID, i, opt)
		require.NoError(t, err)
	}
	return run
}

func TestQuizService_StartQuiz(t *testing.T) {
	f := newQuizFixture(t)

	run, err := f.svc.StartQuiz(context.Background(), 1, QuizParams{Groups: []int{1}, Type: entities.QuizTypeSynonym})
	require.NoError(t, err)

	// Group 1 has four words, fewer than the default of ten.
	assert.Len(t, run.Questions, 4)
	assert.Equal(t, entities.QuizInProgress, run.Phase)
	assert.Equal(t, int64(1), run.SessionID)
	require.Len(t, f.repo.created, 1)
	assert.Equal(t, 4, f.repo.created[0].TotalQuestions)
	assert.Equal(t, []int64{1}, f.repo.abandoned)

	cur, err := f.svc.Current(1)
	require.NoError(t, err)
	assert.Equal(t, run.SessionID, cur.SessionID)
}

func TestQuizService_StartQuizErrors(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.svc.StartQuiz(context.Background(), 1, QuizParams{Type: entities.QuizTypeSynonym})
	assert.ErrorIs(t, err, ErrNoGroupsSelected)

	_, err = f.svc.StartQuiz(context.Background(), 1, QuizParams{Groups: []int{9}, Type: entities.QuizTypeSynonym})
	assert.ErrorIs(t, err, ErrNoQuestionsAvailable)

	_, err = f.svc.StartQuiz(context.Background(), 1, QuizParams{Groups: []int{1}, Type: "spelling"})
	assert.ErrorIs(t, err, entities.ErrUnknownQuizType)

	f.tr.err = errDB
	_, err = f.svc.StartQuiz(context.Background(), 1, QuizParams{Groups: []int{1}, Type: entities.QuizTypeSynonym})
	assert.ErrorIs(t, err, errDB)

	_, err = f.svc.Current(1)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestQuizService_AnswerCompletesSession(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	run, err := f.svc.StartQuiz(ctx, 1, QuizParams{Groups: []int{1, 2}, Count: 3, Type: entities.QuizTypeDefinition})
	require.NoError(t, err)
	require.Len(t, run.Questions, 3)

	run = answerAll(t, f.svc, 1, run, true)

	assert.Equal(t, entities.QuizFinished, run.Phase)
	assert.Equal(t, 3, run.Score())
	require.Len(t, f.repo.answers, 3)
	for i, a := range f.repo.answers {
		assert.Equal(t, i, a.QuestionOrder)
		assert.True(t, a.IsCorrect)
	}
	require.Len(t, f.repo.completed, 1)
	assert.Equal(t, 3, f.repo.completed[0].CorrectAnswers)
	assert.Equal(t, entities.SessionStatusCompleted, f.repo.completed[0].SessionStatus)
}

func TestQuizService_AnswerRejectsStale(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	run, err := f.svc.StartQuiz(ctx, 1, QuizParams{Groups: []int{1}, Count: 2, Type: entities.QuizTypeReverse})
	require.NoError(t, err)

	_, err = f.svc.Answer(ctx, 1, run.SessionID, 1, 0)
	assert.ErrorIs(t, err, ErrStaleQuestion)

	_, err = f.svc.Answer(ctx, 1, run.SessionID, 0, 99)
	assert.ErrorIs(t, err, ErrStaleQuestion)

	_, err = f.svc.Answer(ctx, 1, run.SessionID+1, 0, 0)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)

	_, err = f.svc.Answer(ctx, 2, run.SessionID, 0, 0)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)

	// A double tap on the same keyboard only counts once.
	_, err = f.svc.Answer(ctx, 1, run.SessionID, 0, 0)
	require.NoError(t, err)
	_, err = f.svc.Answer(ctx, 1, run.SessionID, 0, 0)
	assert.ErrorIs(t, err, ErrStaleQuestion)
	assert.Len(t, f.repo.answers, 1)
}

func TestQuizService_PersistenceFailureKeepsQuiz(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	run, err := f.svc.StartQuiz(ctx, 1, QuizParams{Groups: []int{1}, Count: 2, Type: entities.QuizTypeSynonym})
	require.NoError(t, err)

	f.repo.saveErr = errDB
	next, err := f.svc.Answer(ctx, 1, run.SessionID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Current)
}

func TestQuizService_Review(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	run, err := f.svc.StartQuiz(ctx, 1, QuizParams{Groups: []int{1}, Count: 2, Type: entities.QuizTypeSynonym})
	require.NoError(t, err)

	_, err = f.svc.Review(1, 0)
	assert.ErrorIs(t, err, entities.ErrQuizNotFinished)

	answerAll(t, f.svc, 1, run, false)

	reviewed, err := f.svc.Review(1, 1)
	require.NoError(t, err)
	assert.Equal(t, entities.QuizReviewing, reviewed.Phase)
	assert.Equal(t, 1, reviewed.ReviewIndex)

	back, err := f.svc.BackToResults(1)
	require.NoError(t, err)
	assert.Equal(t, entities.QuizFinished, back.Phase)

	f.svc.Abandon(1)
	_, err = f.svc.Review(1, 0)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}
