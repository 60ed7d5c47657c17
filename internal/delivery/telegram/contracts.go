package telegram

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/service"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) error
	Deactivate(ctx context.Context, userID int64) error
}

type WordService interface {
	GroupNumbers() []int
	GetBySlug(slug string) (*entities.Word, error)
	GetByWord(word string) (*entities.Word, error)
	GroupPage(group, page, perPage int) (service.WordPage, error)
}

type SearchService interface {
	Search(q string) service.SearchPage
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	ToggleGroup(ctx context.Context, userID int64, group int) (*entities.UserSettings, error)
	SetQuizType(ctx context.Context, userID int64, t entities.QuizType) (*entities.UserSettings, error)
	SetWordCount(ctx context.Context, userID int64, raw string) (*entities.UserSettings, error)
	WordCount(us *entities.UserSettings) (count, limit int)
	SetGridSize(ctx context.Context, userID int64, grid entities.GridSize) (*entities.UserSettings, error)
	ToggleShuffle(ctx context.Context, userID int64) (*entities.UserSettings, error)
	ToggleDailyWord(ctx context.Context, userID int64) (*entities.UserSettings, error)
}

type QuizService interface {
	StartQuiz(ctx context.Context, userID int64, p service.QuizParams) (entities.QuizRun, error)
	Current(userID int64) (entities.QuizRun, error)
	Answer(ctx context.Context, userID, sessionID int64, qIdx, optIdx int) (entities.QuizRun, error)
	Review(userID int64, idx int) (entities.QuizRun, error)
	BackToResults(userID int64) (entities.QuizRun, error)
	Abandon(userID int64)
}

type MatchService interface {
	StartGame(userID int64, groups []int, grid entities.GridSize) (entities.MatchGame, error)
	Current(userID int64) (entities.MatchGame, error)
	Select(userID int64, gameID uuid.UUID, idx int) (entities.MatchGame, time.Duration, error)
	Resolve(ctx context.Context, userID int64, gameID uuid.UUID) (entities.MatchGame, error)
	Abandon(userID int64)
}

type FlashcardService interface {
	Open(userID int64, group int, shuffle bool) (entities.FlashcardDeck, error)
	SetShuffle(userID int64, shuffle bool) (entities.FlashcardDeck, error)
	Current(userID int64) (entities.FlashcardDeck, error)
	Next(userID int64) (entities.FlashcardDeck, error)
	Prev(userID int64) (entities.FlashcardDeck, error)
	Flip(userID int64) (entities.FlashcardDeck, error)
	Restart(userID int64) (entities.FlashcardDeck, error)
}

type StatsService interface {
	Summary(ctx context.Context, userID int64, quizType entities.QuizType) (entities.UserStats, error)
}

type ResetService interface {
	ResetUser(ctx context.Context, userID int64) error
}

// Services groups the dependencies of the handler.
type Services struct {
	Users      UserService
	Words      WordService
	Search     SearchService
	Settings   SettingsService
	Quiz       QuizService
	Match      MatchService
	Flashcards FlashcardService
	Stats      StatsService
	Reset      ResetService
}
