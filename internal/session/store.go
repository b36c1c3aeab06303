package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTTL is how long an untouched session survives
const DefaultTTL = 2 * time.Hour

// Session is a copy of one editing session's state
type Session struct {
	ID        uuid.UUID    `json:"id"`
	State     types.Resume `json:"state"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Store keeps live sessions in memory. Each session is updated atomically:
// Dispatch holds the write lock for the whole reduce step.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewStore creates a store that evicts sessions idle for longer than ttl.
// A cleanup goroutine runs every cleanupInterval until Stop is called; a
// non-positive interval disables it.
func NewStore(ttl, cleanupInterval time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go s.cleanup(cleanupInterval)
	}
	return s
}

// Create starts a new session seeded with the initial form state
func (s *Store) Create() Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.New(),
		State:     types.NewResume(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return copySession(sess)
}

// Get returns a copy of the session
func (s *Store) Get(id uuid.UUID) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, &SessionNotFoundError{ID: id}
	}
	return copySession(sess), nil
}

// Dispatch applies action to the session. A failed action leaves the
// session untouched and does not refresh its idle timer.
func (s *Store) Dispatch(id uuid.UUID, action Action) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, &SessionNotFoundError{ID: id}
	}
	next, err := Reduce(sess.State, action)
	if err != nil {
		return copySession(sess), err
	}
	sess.State = next
	sess.UpdatedAt = s.now()
	return copySession(sess), nil
}

// Delete drops the session
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return &SessionNotFoundError{ID: id}
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.evictExpired(); n > 0 {
				log.Printf("[session] evicted %d idle session(s)", n)
			}
		case <-s.stop:
			return
		}
	}
}

func (s *Store) evictExpired() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func copySession(sess *Session) Session {
	out := *sess
	out.State = sess.State.Clone()
	return out
}
