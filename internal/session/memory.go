package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in a process-local map. Suitable for a single
// instance; state is lost on restart, which is acceptable for telemetry.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates an in-memory store whose sessions expire after ttl
// of inactivity. Expired sessions are collected lazily on access and by
// [MemoryStore.Sweep].
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context) (*Session, error) {
	now := s.now()
	created := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		LastActive: now,
	}

	s.mu.Lock()
	s.sessions[created.ID] = created
	s.mu.Unlock()

	return copySession(created), nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.liveLocked(id)
	if err != nil {
		return nil, err
	}
	live.LastActive = s.now()
	return copySession(live), nil
}

func (s *MemoryStore) Track(_ context.Context, id string, action Action) error {
	if action.Timestamp.IsZero() {
		action.Timestamp = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.liveLocked(id)
	if err != nil {
		return err
	}
	live.Actions = append(live.Actions, action)
	live.LastActive = s.now()
	return nil
}

func (s *MemoryStore) Actions(_ context.Context, id string) ([]Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.liveLocked(id)
	if err != nil {
		return nil, err
	}

	actions := make([]Action, len(live.Actions))
	copy(actions, live.Actions)
	return actions, nil
}

func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Sweep drops every expired session and reports how many were removed.
// Intended to be called periodically from a background goroutine.
func (s *MemoryStore) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.LastActive.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// liveLocked returns the session for id, expiring it on the spot when its
// TTL has lapsed. Caller must hold the write lock.
func (s *MemoryStore) liveLocked(id string) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if sess.LastActive.Before(s.now().Add(-s.ttl)) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	return sess, nil
}

// copySession returns a defensive copy so callers cannot mutate store state.
func copySession(sess *Session) *Session {
	cloned := *sess
	cloned.Actions = make([]Action, len(sess.Actions))
	copy(cloned.Actions, sess.Actions)
	return &cloned
}
