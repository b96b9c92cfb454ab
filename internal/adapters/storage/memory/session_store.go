package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/PabloGalante/life-guide/internal/app/session"
	"github.com/PabloGalante/life-guide/internal/domain"
	"github.com/PabloGalante/life-guide/internal/observability"
)

// sessionEntry pairs a session's state with the lock that serializes the
// actions run against it.
type sessionEntry struct {
	mu    sync.Mutex
	state *session.State
}

// SessionStore keeps every live session in process memory. A session that
// sees no action for the idle TTL is dropped along with all of its state.
// Nothing survives a restart.
type SessionStore struct {
	cache *cache.Cache
	now   func() time.Time

	remindersEnabled bool
}

type StoreOption func(*SessionStore)

// WithRemindersEnabled sets whether new sessions start with reminders on.
func WithRemindersEnabled(enabled bool) StoreOption {
	return func(s *SessionStore) { s.remindersEnabled = enabled }
}

func NewSessionStore(idleTTL, cleanupInterval time.Duration, opts ...StoreOption) *SessionStore {
	c := cache.New(idleTTL, cleanupInterval)
	c.OnEvicted(func(id string, _ interface{}) {
		observability.Logger().Info("session ended", "session_id", id)
	})

	s := &SessionStore{
		cache:            c,
		now:              time.Now,
		remindersEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a fresh session with empty state.
func (s *SessionStore) Create(ctx context.Context) (session.Snapshot, error) {
	id := domain.SessionID(uuid.NewString())
	st := session.NewState(id, s.now())
	st.RemindersEnabled = s.remindersEnabled

	if err := s.cache.Add(string(id), &sessionEntry{state: st}, cache.DefaultExpiration); err != nil {
		return session.Snapshot{}, errors.New("session already exists")
	}

	observability.LoggerFromContext(ctx).Info("session created", "session_id", id)
	return st.Snapshot(), nil
}

// With runs fn with exclusive access to the session's state and refreshes
// its idle timer. Actions on one session never overlap; different sessions
// run independently.
func (s *SessionStore) With(id domain.SessionID, fn func(*session.State) error) error {
	x, found := s.cache.Get(string(id))
	if !found {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	e := x.(*sessionEntry)

	// Replace fails once the session was deleted or expired, so an ended
	// session is never brought back.
	if err := s.cache.Replace(string(id), e, cache.DefaultExpiration); err != nil {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.state)
}

// Get returns a snapshot of the session.
func (s *SessionStore) Get(id domain.SessionID) (session.Snapshot, error) {
	var snap session.Snapshot
	err := s.With(id, func(st *session.State) error {
		snap = st.Snapshot()
		return nil
	})
	return snap, err
}

// Exists reports whether the session is live. It does not wait for an
// action running on the session.
func (s *SessionStore) Exists(id domain.SessionID) bool {
	_, found := s.cache.Get(string(id))
	return found
}

// Delete ends the session and discards its state.
func (s *SessionStore) Delete(id domain.SessionID) error {
	if _, found := s.cache.Get(string(id)); !found {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	s.cache.Delete(string(id))
	return nil
}

// Count reports live sessions, including expired ones not yet cleaned up.
func (s *SessionStore) Count() int {
	return s.cache.ItemCount()
}
