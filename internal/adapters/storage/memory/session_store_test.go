package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/life-guide/internal/adapters/storage/memory"
	"github.com/PabloGalante/life-guide/internal/app/session"
	"github.com/PabloGalante/life-guide/internal/domain"
)

func TestCreateAndGet(t *testing.T) {
	store := memory.NewSessionStore(time.Hour, time.Minute)

	snap, err := store.Create(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, snap.ID)

	got, err := store.Get(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, 1, store.Count())
}

func TestUnknownSession(t *testing.T) {
	store := memory.NewSessionStore(time.Hour, time.Minute)

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = store.With("nope", func(*session.State) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, store.Delete("nope"), domain.ErrNotFound)
}

func TestDeleteDiscardsState(t *testing.T) {
	store := memory.NewSessionStore(time.Hour, time.Minute)
	snap, err := store.Create(context.Background())
	require.NoError(t, err)

	require.NoError(t, store.Delete(snap.ID))

	_, err = store.Get(snap.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := memory.NewSessionStore(time.Hour, time.Minute)
	a, err := store.Create(context.Background())
	require.NoError(t, err)
	b, err := store.Create(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)

	faith := "Judaism"
	require.NoError(t, store.With(a.ID, func(st *session.State) error {
		st.Preferences.Update(session.PreferenceUpdate{Faith: &faith})
		st.Journal.Append(domain.JournalEntry{ID: "e-1"})
		return nil
	}))

	snapB, err := store.Get(b.ID)
	require.NoError(t, err)
	assert.Empty(t, snapB.Preferences.Faith)
	assert.Zero(t, snapB.JournalCount)

	snapA, err := store.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Judaism", snapA.Preferences.Faith)
	assert.Equal(t, 1, snapA.JournalCount)
}

func TestWithSerializesActions(t *testing.T) {
	store := memory.NewSessionStore(time.Hour, time.Minute)
	snap, err := store.Create(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.With(snap.ID, func(st *session.State) error {
				st.Notifications.Increment()
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := store.Get(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.NotificationCount)
}

func TestIdleSessionExpires(t *testing.T) {
	store := memory.NewSessionStore(20*time.Millisecond, 5*time.Millisecond)
	snap, err := store.Create(context.Background())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := store.Get(snap.ID)
		return err != nil
	}, time.Second, 10*time.Millisecond)
}

func TestRemindersDefault(t *testing.T) {
	store := memory.NewSessionStore(time.Hour, time.Minute, memory.WithRemindersEnabled(false))

	snap, err := store.Create(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.RemindersEnabled)
}

func TestExistsDoesNotWaitForActions(t *testing.T) {
	store := memory.NewSessionStore(time.Hour, time.Minute)
	snap, err := store.Create(context.Background())
	require.NoError(t, err)

	inside := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = store.With(snap.ID, func(*session.State) error {
			close(inside)
			<-release
			return nil
		})
	}()
	<-inside
	defer close(release)

	assert.True(t, store.Exists(snap.ID))
	assert.False(t, store.Exists("nope"))
}
