package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/repository"
)

var errDB = errors.New("db is down")

func testWords(t *testing.T) *repository.WordRepository {
	t.Helper()
	repo, err := repository.NewWordRepository(testCorpus(), nil)
	require.NoError(t, err)
	return repo
}

type fakeTransactor struct {
	calls int
	err   error
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeQuizRepo struct {
	nextID    int64
	created   []*entities.QuizSession
	answers   []*entities.QuizAnswer
	completed []*entities.QuizSession
	abandoned []int64
	recent    []entities.SessionSummary
	typeAsked entities.QuizType
	saveErr   error
}

func (f *fakeQuizRepo) CreateSession(_ context.Context, s *entities.QuizSession) error {
	f.nextID++
	s.ID = f.nextID
	f.created = append(f.created, s)
	return nil
}

func (f *fakeQuizRepo) SaveAnswer(_ context.Context, a *entities.QuizAnswer) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.answers = append(f.answers, a)
	return nil
}

func (f *fakeQuizRepo) CompleteSession(_ context.Context, s *entities.QuizSession) error {
	f.completed = append(f.completed, s)
	return nil
}

func (f *fakeQuizRepo) AbandonActiveSessions(_ context.Context, userID int64) error {
	f.abandoned = append(f.abandoned, userID)
	return nil
}

func (f *fakeQuizRepo) RecentSessions(_ context.Context, _ int64, quizType entities.QuizType, limit uint64) ([]entities.SessionSummary, error) {
	f.typeAsked = quizType
	return takeFirst(f.recent, int(limit)), nil
}

type fakeGameRepo struct {
	mu      sync.Mutex
	results []*entities.MatchResult
	err     error
}

func (f *fakeGameRepo) SaveResult(_ context.Context, res *entities.MatchResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.results = append(f.results, res)
	return nil
}

type fakeSettingsRepo struct {
	byUser  map[int64]*entities.UserSettings
	creates int
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{byUser: make(map[int64]*entities.UserSettings)}
}

func (f *fakeSettingsRepo) Create(_ context.Context, s *entities.UserSettings) error {
	f.creates++
	if _, ok := f.byUser[s.UserID]; ok {
		return nil
	}
	cp := *s
	f.byUser[s.UserID] = &cp
	return nil
}

func (f *fakeSettingsRepo) GetByUserID(_ context.Context, userID int64) (*entities.UserSettings, error) {
	s, ok := f.byUser[userID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	cp := *s
	cp.SelectedGroups = append([]int(nil), s.SelectedGroups...)
	return &cp, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s *entities.UserSettings) error {
	if _, ok := f.byUser[s.UserID]; !ok {
		return repository.ErrSettingsNotFound
	}
	cp := *s
	f.byUser[s.UserID] = &cp
	return nil
}

type fakeUserRepo struct {
	saved       []*entities.User
	deactivated []int64
	subs        []entities.DailyWordSubscriber
	err         error
}

func (f *fakeUserRepo) SaveUser(_ context.Context, u *entities.User) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, u)
	return nil
}

func (f *fakeUserRepo) Deactivate(_ context.Context, userID int64) error {
	f.deactivated = append(f.deactivated, userID)
	return nil
}

func (f *fakeUserRepo) ListDailyWordSubscribers(context.Context) ([]entities.DailyWordSubscriber, error) {
	return f.subs, f.err
}

type fakeStatsRepo struct {
	quiz     entities.QuizStats
	match    entities.MatchStats
	mistakes []entities.PairMistake
	err      error
}

func (f *fakeStatsRepo) QuizStats(context.Context, int64) (entities.QuizStats, error) {
	return f.quiz, f.err
}

func (f *fakeStatsRepo) MatchStats(context.Context, int64) (entities.MatchStats, error) {
	return f.match, nil
}

func (f *fakeStatsRepo) TopMistakes(_ context.Context, _ int64, limit uint64) ([]entities.PairMistake, error) {
	return takeFirst(f.mistakes, int(limit)), nil
}

type fakeResetRepo struct {
	reset []int64
}

func (f *fakeResetRepo) ResetUser(_ context.Context, userID int64) error {
	f.reset = append(f.reset, userID)
	return nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent map[int64]entities.DailyWordPayload
	fail map[int64]bool
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		sent: make(map[int64]entities.DailyWordPayload),
		fail: make(map[int64]bool),
	}
}

func (f *fakeNotifier) SendDailyWord(_ context.Context, sub entities.DailyWordSubscriber, p entities.DailyWordPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[sub.UserID] {
		return errors.New("chat not found")
	}
	f.sent[sub.UserID] = p
	return nil
}

func nopLogger() *zap.Logger { return zap.NewNop() }
