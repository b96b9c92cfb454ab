package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PabloGalante/life-guide/internal/app/session"
	"github.com/PabloGalante/life-guide/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestNewStateDefaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	st := session.NewState("s-1", now)

	snap := st.Snapshot()
	assert.Equal(t, domain.SessionID("s-1"), snap.ID)
	assert.Equal(t, now, snap.CreatedAt)
	assert.Equal(t, session.Preferences{Faith: "", FavoritePath: domain.PathFindHelp}, snap.Preferences)
	assert.Equal(t, domain.BackgroundDefault, snap.Background)
	assert.Empty(t, snap.BackgroundRef)
	assert.True(t, snap.RemindersEnabled)
	assert.Zero(t, snap.JournalCount)
	assert.Zero(t, snap.NotificationCount)
}

func TestPreferenceStorePartialUpdate(t *testing.T) {
	s := session.NewPreferenceStore()

	s.Update(session.PreferenceUpdate{Faith: ptr("Taoism")})
	assert.Equal(t, "Taoism", s.Current().Faith)
	assert.Equal(t, domain.PathFindHelp, s.Current().FavoritePath)

	s.Update(session.PreferenceUpdate{FavoritePath: ptr(domain.PathDiscoverPeace)})
	assert.Equal(t, "Taoism", s.Current().Faith)
	assert.Equal(t, domain.PathDiscoverPeace, s.Current().FavoritePath)

	s.Update(session.PreferenceUpdate{})
	assert.Equal(t, session.Preferences{Faith: "Taoism", FavoritePath: domain.PathDiscoverPeace}, s.Current())

	s.Update(session.PreferenceUpdate{Faith: ptr("")})
	assert.Empty(t, s.Current().Faith)
}

func TestPreferenceStoreCurrentIsCopy(t *testing.T) {
	s := session.NewPreferenceStore()
	s.Update(session.PreferenceUpdate{Faith: ptr("Islam")})

	snap := s.Current()
	snap.Faith = "tampered"

	assert.Equal(t, "Islam", s.Current().Faith)
}

func TestNotificationCounter(t *testing.T) {
	var c session.NotificationCounter
	assert.Equal(t, 0, c.Current())
	assert.Equal(t, 1, c.Increment())
	assert.Equal(t, 2, c.Increment())
	assert.Equal(t, 2, c.Current())
}

func TestStatesAreIsolated(t *testing.T) {
	a := session.NewState("a", time.Now())
	b := session.NewState("b", time.Now())

	a.Preferences.Update(session.PreferenceUpdate{Faith: ptr("Sikhism")})
	a.Journal.Append(domain.JournalEntry{ID: "e-1"})
	a.Notifications.Increment()
	a.Background = domain.FaithThemeBackground("Sikhism")

	assert.Empty(t, b.Preferences.Current().Faith)
	assert.Zero(t, b.Journal.Count())
	assert.Zero(t, b.Notifications.Current())
	assert.Equal(t, domain.BackgroundDefault, b.Background.Kind())

	snap := a.Snapshot()
	assert.Equal(t, domain.BackgroundFaith, snap.Background)
	assert.Equal(t, "Sikhism", snap.BackgroundRef)
}
