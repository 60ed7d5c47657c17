package service

import (
	"context"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

type WordRepository interface {
	GetAll() []*entities.Word
	GetBySlug(slug string) (*entities.Word, error)
	GetByWord(word string) (*entities.Word, error)
	GetRandom() (*entities.Word, error)
	GroupNumbers() []int
	GetByGroup(group int) ([]*entities.Word, error)
	GetByGroups(groups []int) []*entities.Word
}

type UserRepository interface {
	SaveUser(ctx context.Context, user *entities.User) error
	Deactivate(ctx context.Context, userID int64) error
	ListDailyWordSubscribers(ctx context.Context) ([]entities.DailyWordSubscriber, error)
}

type SettingsRepository interface {
	Create(ctx context.Context, settings *entities.UserSettings) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	Update(ctx context.Context, settings *entities.UserSettings) error
}

type QuizRepository interface {
	CreateSession(ctx context.Context, session *entities.QuizSession) error
	SaveAnswer(ctx context.Context, answer *entities.QuizAnswer) error
	CompleteSession(ctx context.Context, session *entities.QuizSession) error
	AbandonActiveSessions(ctx context.Context, userID int64) error
	RecentSessions(ctx context.Context, userID int64, quizType entities.QuizType, limit uint64) ([]entities.SessionSummary, error)
}

type GameRepository interface {
	SaveResult(ctx context.Context, res *entities.MatchResult) error
}

type StatsRepository interface {
	QuizStats(ctx context.Context, userID int64) (entities.QuizStats, error)
	MatchStats(ctx context.Context, userID int64) (entities.MatchStats, error)
	TopMistakes(ctx context.Context, userID int64, limit uint64) ([]entities.PairMistake, error)
}

type ResetRepository interface {
	ResetUser(ctx context.Context, userID int64) error
}

// Transactor runs fn in a database transaction carried by ctx.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DailyWordNotifier delivers the daily word to a subscriber.
type DailyWordNotifier interface {
	SendDailyWord(ctx context.Context, sub entities.DailyWordSubscriber, payload entities.DailyWordPayload) error
}
