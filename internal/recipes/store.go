package recipes

import (
	"errors"
	"sync"
	"time"
)

// ErrNoDraft is returned when an operation needs an active draft and the
// conversation has none.
var ErrNoDraft = errors.New("recipes: no active draft for conversation")

type entry struct {
	draft     *Draft
	touchedAt time.Time
}

// Store holds the per-conversation drafts. Events within one
// conversation arrive strictly ordered; the mutex only guards against
// distinct conversations being handled in parallel.
type Store struct {
	mu     sync.Mutex
	drafts map[int64]*entry
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		drafts: make(map[int64]*entry),
		now:    time.Now,
	}
}

// Start opens a fresh draft for the conversation, discarding any
// previous one.
func (s *Store) Start(conversationID int64) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := NewDraft()
	s.drafts[conversationID] = &entry{draft: d, touchedAt: s.now()}
	return d
}

// Get returns the active draft, or ErrNoDraft.
func (s *Store) Get(conversationID int64) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.drafts[conversationID]
	if !ok {
		return nil, ErrNoDraft
	}
	e.touchedAt = s.now()
	return e.draft, nil
}

// Clear destroys the active draft. Reports whether one existed.
func (s *Store) Clear(conversationID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.drafts[conversationID]
	delete(s.drafts, conversationID)
	return ok
}

// SweepStale clears drafts not touched within ttl and returns how many
// were dropped. An expired draft is equivalent to an operator cancel.
func (s *Store) SweepStale(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	n := 0
	for id, e := range s.drafts {
		if e.touchedAt.Before(cutoff) {
			delete(s.drafts, id)
			n++
		}
	}
	return n
}
