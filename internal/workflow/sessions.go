package workflow

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"technician-dispatch/internal/apperr"
)

// Session is one user's modal workflow.
type Session struct {
	ID         string
	Controller *Controller
	Notices    *NoticeBuffer

	lastSeen time.Time
}

// Sessions keeps controllers keyed by opaque ids. Idle sessions expire after
// ttl and are swept whenever the registry is touched.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	factory  func(Notifier) *Controller
}

// NewSessions creates a registry. factory builds a controller that reports to
// the given notifier. A non-positive ttl disables expiry.
func NewSessions(ttl time.Duration, factory func(Notifier) *Controller) *Sessions {
	return &Sessions{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		factory:  factory,
	}
}

// SetClock overrides the time source.
func (s *Sessions) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Open starts a new session with a closed controller.
func (s *Sessions) Open() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)

	buf := &NoticeBuffer{}
	sess := &Session{
		ID:         uuid.NewString(),
		Controller: s.factory(buf),
		Notices:    buf,
		lastSeen:   now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the live session with id and refreshes its idle timer.
func (s *Sessions) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, apperr.ErrNotFound)
	}
	sess.lastSeen = now
	return sess, nil
}

// Close ends the session with id. Unknown ids are ignored.
func (s *Sessions) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.sessions)
}

func (s *Sessions) sweepLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
