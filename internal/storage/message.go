package storage

import (
	"sync"
	"time"
)

// SentMessage identifies a bot message in a chat.
type SentMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// MessageStorage remembers the last message of one kind sent to each user,
// e.g. the daily word, so the previous one can be cleaned up.
type MessageStorage struct {
	mu       sync.RWMutex
	messages map[int64]SentMessage
}

func NewMessageStorage() *MessageStorage {
	return &MessageStorage{
		messages: make(map[int64]SentMessage),
	}
}

func (s *MessageStorage) Get(userID int64) (SentMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[userID]
	return msg, ok
}

func (s *MessageStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, userID)
}

// UpsertAndGetPrev stores a new message and returns the one it replaced.
func (s *MessageStorage) UpsertAndGetPrev(userID, chatID int64, messageID int) (prev SentMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[userID]
	s.messages[userID] = SentMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    time.Now(),
	}
	return prev, hadPrev
}
