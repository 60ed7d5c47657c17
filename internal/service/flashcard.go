package service

import (
	"math/rand"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/storage"
)

type FlashcardService struct {
	words WordRepository
	decks *storage.SessionStore[entities.FlashcardDeck]
	rng   *lockedRand
}

func NewFlashcardService(words WordRepository, decks *storage.SessionStore[entities.FlashcardDeck], rng *rand.Rand) *FlashcardService {
	return &FlashcardService{
		words: words,
		decks: decks,
		rng:   newLockedRand(rng),
	}
}

// Open starts a deck over the words of group, optionally shuffled.
func (s *FlashcardService) Open(userID int64, group int, shuffle bool) (entities.FlashcardDeck, error) {
	words, err := s.words.GetByGroup(group)
	if err != nil {
		return entities.FlashcardDeck{}, err
	}

	deck := entities.NewFlashcardDeck(group, s.order(words, shuffle), shuffle)
	s.decks.Put(userID, deck)
	return deck, nil
}

// SetShuffle reopens the current group in shuffled or alphabetical order.
func (s *FlashcardService) SetShuffle(userID int64, shuffle bool) (entities.FlashcardDeck, error) {
	cur, err := s.Current(userID)
	if err != nil {
		return cur, err
	}
	return s.Open(userID, cur.Group, shuffle)
}

func (s *FlashcardService) Current(userID int64) (entities.FlashcardDeck, error) {
	deck, ok := s.decks.Get(userID)
	if !ok {
		return entities.FlashcardDeck{}, ErrNoActiveDeck
	}
	return deck, nil
}

func (s *FlashcardService) Next(userID int64) (entities.FlashcardDeck, error) {
	return s.apply(userID, entities.FlashcardDeck.Next)
}

func (s *FlashcardService) Prev(userID int64) (entities.FlashcardDeck, error) {
	return s.apply(userID, entities.FlashcardDeck.Prev)
}

func (s *FlashcardService) Flip(userID int64) (entities.FlashcardDeck, error) {
	return s.apply(userID, entities.FlashcardDeck.Flip)
}

func (s *FlashcardService) Restart(userID int64) (entities.FlashcardDeck, error) {
	return s.apply(userID, entities.FlashcardDeck.Restart)
}

func (s *FlashcardService) apply(userID int64, fn func(entities.FlashcardDeck) entities.FlashcardDeck) (entities.FlashcardDeck, error) {
	return s.decks.Update(userID, func(cur entities.FlashcardDeck, ok bool) (entities.FlashcardDeck, error) {
		if !ok {
			return cur, ErrNoActiveDeck
		}
		return fn(cur), nil
	})
}

func (s *FlashcardService) order(words []*entities.Word, shuffle bool) []*entities.Word {
	out := append([]*entities.Word(nil), words...)
	if shuffle {
		s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out
}
