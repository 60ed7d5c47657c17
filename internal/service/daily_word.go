package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

const maxConcurrentSends = 10

// DailyWordService sends a random word card to every subscribed user on a
// cron schedule.
type DailyWordService struct {
	users    UserRepository
	words    WordRepository
	stats    StatsRepository
	notifier DailyWordNotifier
	schedule string
	logger   *zap.Logger
}

func NewDailyWordService(
	users UserRepository,
	words WordRepository,
	stats StatsRepository,
	schedule string,
	logger *zap.Logger,
) *DailyWordService {
	return &DailyWordService{
		users:    users,
		words:    words,
		stats:    stats,
		schedule: schedule,
		logger:   logger,
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *DailyWordService) SetNotifier(notifier DailyWordNotifier) {
	s.notifier = notifier
}

// Start runs the scheduler until ctx is done.
func (s *DailyWordService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.schedule, func() {
		s.logger.Info("cron triggered: sending daily words")
		if _, err := s.SendAll(ctx); err != nil {
			s.logger.Error("failed to send daily words", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("add daily word job %q: %w", s.schedule, err)
	}

	c.Start()
	s.logger.Info("daily word scheduler started", zap.String("schedule", s.schedule))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("daily word scheduler stopped")
	return nil
}

// SendAll picks one word and sends it to every subscriber. It returns the
// number of messages delivered.
func (s *DailyWordService) SendAll(ctx context.Context) (int, error) {
	if s.notifier == nil {
		return 0, errors.New("notifier not initialized")
	}

	subs, err := s.users.ListDailyWordSubscribers(ctx)
	if err != nil {
		return 0, fmt.Errorf("list subscribers: %w", err)
	}
	if len(subs) == 0 {
		return 0, nil
	}

	word, err := s.words.GetRandom()
	if err != nil {
		return 0, fmt.Errorf("pick daily word: %w", err)
	}

	sent := s.processBatch(ctx, subs, word)

	s.logger.Info("daily words processed",
		zap.String("word", word.Word),
		zap.Int("subscribers", len(subs)),
		zap.Int("total_sent", sent),
	)

	return sent, nil
}

// processBatch sends the word to subscribers concurrently.
func (s *DailyWordService) processBatch(ctx context.Context, subs []entities.DailyWordSubscriber, word *entities.Word) int {
	sem := make(chan struct{}, maxConcurrentSends)
	var wg sync.WaitGroup
	var mu sync.Mutex
	sent := 0

	for _, sub := range subs {
		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if err := s.send(ctx, sub, word); err != nil {
				s.logger.Error("failed to send daily word",
					zap.Int64("user_id", sub.UserID),
					zap.Error(err))
				return
			}
			mu.Lock()
			sent++
			mu.Unlock()
		}()
	}

	wg.Wait()
	return sent
}

func (s *DailyWordService) send(ctx context.Context, sub entities.DailyWordSubscriber, word *entities.Word) error {
	stats, err := s.stats.QuizStats(ctx, sub.UserID)
	if err != nil {
		return fmt.Errorf("quiz stats: %w", err)
	}

	payload := entities.DailyWordPayload{Word: word, Stats: stats}
	if err := s.notifier.SendDailyWord(ctx, sub, payload); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
