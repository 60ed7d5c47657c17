package storage

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SessionStore keeps per-user in-memory state such as a running quiz or
// matching game. Entries are evicted when the store is full or after ttl.
type SessionStore[V any] struct {
	mu    sync.Mutex
	cache *expirable.LRU[int64, V]
}

// NewSessionStore creates a store holding at most size entries.
func NewSessionStore[V any](size int, ttl time.Duration) *SessionStore[V] {
	return &SessionStore[V]{
		cache: expirable.NewLRU[int64, V](size, nil, ttl),
	}
}

// Get returns the state stored for a user.
func (s *SessionStore[V]) Get(userID int64) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(userID)
}

// Put replaces the state of a user.
func (s *SessionStore[V]) Put(userID int64, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(userID, v)
}

// Delete removes the state of a user.
func (s *SessionStore[V]) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(userID)
}

// Update atomically replaces the state of a user with the result of fn.
// fn receives the current state and whether it exists. When fn returns an
// error the stored state is left unchanged.
func (s *SessionStore[V]) Update(userID int64, fn func(cur V, ok bool) (V, error)) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.cache.Get(userID)
	next, err := fn(cur, ok)
	if err != nil {
		return cur, err
	}

	s.cache.Add(userID, next)
	return next, nil
}

// Len returns the number of live entries.
func (s *SessionStore[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
