package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/config"
	"github.com/aliskhannn/gre-vocab-bot/internal/delivery/telegram"
	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/infra/postgres"
	"github.com/aliskhannn/gre-vocab-bot/internal/logger"
	"github.com/aliskhannn/gre-vocab-bot/internal/repository"
	"github.com/aliskhannn/gre-vocab-bot/internal/search"
	"github.com/aliskhannn/gre-vocab-bot/internal/service"
	"github.com/aliskhannn/gre-vocab-bot/internal/storage"
)

var commands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Start the bot"},
	{Command: "words", Description: "Browse word groups"},
	{Command: "search", Description: "Search words (usage: /search laconic)"},
	{Command: "flashcards", Description: "Study with flashcards"},
	{Command: "quiz", Description: "Take a quiz"},
	{Command: "match", Description: "Play the matching game"},
	{Command: "count", Description: "Set words per quiz (usage: /count 15)"},
	{Command: "stats", Description: "Show your statistics"},
	{Command: "settings", Description: "Settings"},
	{Command: "reset", Description: "Reset your progress"},
	{Command: "help", Description: "Help"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("bot stopped", zap.Error(err))
	}

	lg.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	wordRepo, err := repository.LoadWordRepository(ctx, cfg.VocabSource, repository.LoadOptions{
		Timeout:    cfg.Corpus.FetchTimeout,
		MaxRetries: cfg.Corpus.MaxRetries,
	}, lg)
	if err != nil {
		return err
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(ctx, pool, lg); err != nil {
			return err
		}
	}

	tr := postgres.NewTransactor(pool)

	userRepo := repository.NewUserRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	quizRepo := repository.NewQuizRepository(pool)
	gameRepo := repository.NewGameRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)
	resetRepo := repository.NewResetRepository(pool)

	quizzes := storage.NewSessionStore[entities.QuizRun](cfg.Sessions.Size, cfg.Sessions.TTL)
	games := storage.NewSessionStore[entities.MatchGame](cfg.Sessions.Size, cfg.Sessions.TTL)
	decks := storage.NewSessionStore[entities.FlashcardDeck](cfg.Sessions.Size, cfg.Sessions.TTL)

	index := search.NewIndex(wordRepo.GetAll(), search.Options{
		Threshold:      cfg.Search.Threshold,
		MinMatchLength: cfg.Search.MinMatchLength,
	})

	limits := service.WordCountLimits{
		MaxPerGroup:     cfg.Quiz.MaxWordsPerGroup,
		DefaultPerGroup: cfg.Quiz.DefaultWordsPerGroup,
	}
	delays := service.MatchDelays{
		Match:    cfg.Game.MatchDelay,
		Mismatch: cfg.Game.MismatchDelay,
	}

	dailyWord := service.NewDailyWordService(userRepo, wordRepo, statsRepo, cfg.DailyWord.Schedule, lg)

	svc := telegram.Services{
		Users:      service.NewUserService(userRepo, settingsRepo, tr),
		Words:      service.NewWordService(wordRepo),
		Search:     service.NewSearchService(index, cfg.Search.MaxResults),
		Settings:   service.NewSettingsService(settingsRepo, limits),
		Quiz:       service.NewQuizService(wordRepo, quizRepo, tr, service.NewQuestionGenerator(nil), quizzes, limits, lg),
		Match:      service.NewMatchService(wordRepo, gameRepo, tr, service.NewPairGenerator(nil), games, delays, lg),
		Flashcards: service.NewFlashcardService(wordRepo, decks, nil),
		Stats:      service.NewStatsService(statsRepo, quizRepo),
		Reset:      service.NewResetService(resetRepo, settingsRepo, tr, quizzes, games, decks),
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Env == "local"

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}
	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	handler := telegram.NewHandler(bot, lg, svc, storage.NewMessageStorage())
	dailyWord.SetNotifier(handler)

	go func() {
		if err := dailyWord.Start(ctx); err != nil {
			lg.Error("daily word scheduler stopped", zap.Error(err))
		}
	}()

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
