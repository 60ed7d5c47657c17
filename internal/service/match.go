package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/storage"
)

// MatchDelays are the pauses before a selected pair is resolved.
type MatchDelays struct {
	Match    time.Duration
	Mismatch time.Duration
}

// DefaultMatchDelays give a mismatch a little longer on screen.
var DefaultMatchDelays = MatchDelays{Match: 500 * time.Millisecond, Mismatch: 700 * time.Millisecond}

type MatchService struct {
	words  WordRepository
	games  GameRepository
	tr     Transactor
	pairs  *PairGenerator
	store  *storage.SessionStore[entities.MatchGame]
	delays MatchDelays
	logger *zap.Logger
}

func NewMatchService(
	words WordRepository,
	games GameRepository,
	tr Transactor,
	pairs *PairGenerator,
	store *storage.SessionStore[entities.MatchGame],
	delays MatchDelays,
	logger *zap.Logger,
) *MatchService {
	return &MatchService{
		words:  words,
		games:  games,
		tr:     tr,
		pairs:  pairs,
		store:  store,
		delays: delays,
		logger: logger,
	}
}

// StartGame deals a new board from synonym pairs of the selected groups and
// replaces any running game. The board may hold fewer pairs than the grid
// when the groups do not have enough synonyms.
func (s *MatchService) StartGame(userID int64, groups []int, grid entities.GridSize) (entities.MatchGame, error) {
	if len(groups) == 0 {
		return entities.MatchGame{}, ErrNoGroupsSelected
	}

	seed := s.words.GetByGroups(groups)
	pairs := s.pairs.GeneratePairs(seed, s.words.GetAll(), grid.PairCount())
	if len(pairs) == 0 {
		return entities.MatchGame{}, ErrNoPairsAvailable
	}

	game := entities.NewMatchGame(grid, s.pairs.BuildTiles(pairs))
	s.store.Put(userID, game)

	s.logger.Info("matching game started",
		zap.Int64("user_id", userID),
		zap.String("game_id", game.ID.String()),
		zap.Int("pairs", len(pairs)),
	)

	return game, nil
}

// Current returns the game of the user.
func (s *MatchService) Current(userID int64) (entities.MatchGame, error) {
	game, ok := s.store.Get(userID)
	if !ok {
		return entities.MatchGame{}, ErrNoActiveGame
	}
	return game, nil
}

// Select clicks tile idx. When a pair is selected it returns the delay after
// which Resolve must be called; otherwise the delay is zero.
func (s *MatchService) Select(userID int64, gameID uuid.UUID, idx int) (entities.MatchGame, time.Duration, error) {
	var outcome entities.MatchOutcome

	game, err := s.store.Update(userID, func(cur entities.MatchGame, ok bool) (entities.MatchGame, error) {
		if !ok || cur.ID != gameID {
			return cur, ErrNoActiveGame
		}
		var next entities.MatchGame
		next, outcome = cur.Select(idx)
		return next, nil
	})
	if err != nil {
		return game, 0, err
	}

	switch outcome {
	case entities.OutcomeMatch:
		return game, s.delays.Match, nil
	case entities.OutcomeMismatch:
		return game, s.delays.Mismatch, nil
	default:
		return game, 0, nil
	}
}

// Resolve commits the pending pair. When this completes the game, the result
// is stored in history.
func (s *MatchService) Resolve(ctx context.Context, userID int64, gameID uuid.UUID) (entities.MatchGame, error) {
	var completed bool

	game, err := s.store.Update(userID, func(cur entities.MatchGame, ok bool) (entities.MatchGame, error) {
		if !ok || cur.ID != gameID {
			return cur, ErrNoActiveGame
		}
		next := cur.Resolve()
		completed = cur.Phase != entities.MatchComplete && next.Phase == entities.MatchComplete
		return next, nil
	})
	if err != nil {
		return game, err
	}

	if completed {
		if err := s.saveResult(ctx, game.Result(userID)); err != nil {
			s.logger.Error("failed to save matching game",
				zap.Int64("user_id", userID),
				zap.String("game_id", gameID.String()),
				zap.Error(err),
			)
		}
	}

	return game, nil
}

func (s *MatchService) saveResult(ctx context.Context, res *entities.MatchResult) error {
	err := s.tr.WithinTx(ctx, func(ctx context.Context) error {
		return s.games.SaveResult(ctx, res)
	})
	if err != nil {
		return fmt.Errorf("save match result: %w", err)
	}
	return nil
}

// Abandon drops the game of the user.
func (s *MatchService) Abandon(userID int64) {
	s.store.Delete(userID)
}
