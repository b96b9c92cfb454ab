// Package session holds the state owned by one interactive session.
package session

import (
	"time"

	"github.com/PabloGalante/life-guide/internal/app/journal"
	"github.com/PabloGalante/life-guide/internal/app/reminder"
	"github.com/PabloGalante/life-guide/internal/domain"
)

// State is everything one session remembers. It is created empty when the
// session starts and dropped when it ends; nothing is restored or shared.
// A State must only be used by one goroutine at a time.
type State struct {
	ID        domain.SessionID
	CreatedAt time.Time

	Preferences   *PreferenceStore
	Background    domain.BackgroundMode
	Reminder      reminder.State
	Journal       *journal.Journal
	Notifications *NotificationCounter

	RemindersEnabled bool
}

func NewState(id domain.SessionID, now time.Time) *State {
	return &State{
		ID:               id,
		CreatedAt:        now,
		Preferences:      NewPreferenceStore(),
		Background:       domain.DefaultBackground(),
		Journal:          journal.New(),
		Notifications:    &NotificationCounter{},
		RemindersEnabled: true,
	}
}

// Snapshot is a read-only view of State for callers outside the session.
type Snapshot struct {
	ID                domain.SessionID      `json:"id"`
	CreatedAt         time.Time             `json:"created_at"`
	Preferences       Preferences           `json:"preferences"`
	Background        domain.BackgroundKind `json:"background"`
	BackgroundRef     string                `json:"background_ref,omitempty"`
	RemindersEnabled  bool                  `json:"reminders_enabled"`
	JournalCount      int                   `json:"journal_count"`
	NotificationCount int                   `json:"notification_count"`
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		ID:                s.ID,
		CreatedAt:         s.CreatedAt,
		Preferences:       s.Preferences.Current(),
		Background:        s.Background.Kind(),
		RemindersEnabled:  s.RemindersEnabled,
		JournalCount:      s.Journal.Count(),
		NotificationCount: s.Notifications.Current(),
	}
	if key, ok := s.Background.FaithKey(); ok {
		snap.BackgroundRef = key
	} else if path, ok := s.Background.CustomPath(); ok {
		snap.BackgroundRef = path
	}
	return snap
}
