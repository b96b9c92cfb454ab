package reminder_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/life-guide/internal/app/reminder"
)

func TestShouldFireSequence(t *testing.T) {
	fire, st := reminder.ShouldFire(9, reminder.State{})
	assert.True(t, fire)
	assert.Equal(t, reminder.State{LastFiredHour: 9, Fired: true}, st)

	fire, again := reminder.ShouldFire(9, st)
	assert.False(t, fire)
	assert.Equal(t, st, again)

	fire, rearmed := reminder.ShouldFire(10, again)
	assert.False(t, fire)
	assert.Equal(t, reminder.State{}, rearmed)

	fire, _ = reminder.ShouldFire(9, rearmed)
	assert.True(t, fire, "same hour fires again once re-armed")
}

func TestShouldFireNextScheduledHour(t *testing.T) {
	_, st := reminder.ShouldFire(9, reminder.State{})

	// 12 is scheduled and differs from the last fired hour.
	fire, st := reminder.ShouldFire(12, st)
	assert.True(t, fire)
	assert.Equal(t, 12, st.LastFiredHour)
}

func TestShouldFireOutsideSchedule(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		fire, st := reminder.ShouldFire(hour, reminder.State{})
		switch hour {
		case 9, 12, 15, 18, 21:
			assert.True(t, fire, "hour %d", hour)
		default:
			assert.False(t, fire, "hour %d", hour)
			assert.Equal(t, reminder.State{}, st)
		}
	}
}

func TestShouldFireIsPure(t *testing.T) {
	in := reminder.State{LastFiredHour: 15, Fired: true}
	_, _ = reminder.ShouldFire(3, in)
	assert.Equal(t, reminder.State{LastFiredHour: 15, Fired: true}, in)
}

type stubSource struct{ n int }

func (s stubSource) IntN(int) int { return s.n }

func TestPicker(t *testing.T) {
	p := reminder.NewPicker(stubSource{n: 2})
	assert.Equal(t, reminder.Messages()[2], p.Pick())

	seeded := reminder.NewPicker(rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 20; i++ {
		assert.Contains(t, reminder.Messages(), seeded.Pick())
	}

	assert.Contains(t, reminder.Messages(), reminder.NewPicker(nil).Pick())
}

func TestFixedClock(t *testing.T) {
	assert.Equal(t, 18, reminder.FixedClock(18).NowHour())
	h := reminder.SystemClock{}.NowHour()
	assert.GreaterOrEqual(t, h, 0)
	assert.Less(t, h, 24)
}

func TestScheduleAndMessagesAreCopies(t *testing.T) {
	hours := reminder.ScheduleHours()
	assert.Equal(t, []int{9, 12, 15, 18, 21}, hours)
	hours[0] = 10

	fire, _ := reminder.ShouldFire(10, reminder.State{})
	assert.False(t, fire)
	fire, _ = reminder.ShouldFire(9, reminder.State{})
	assert.True(t, fire)

	msgs := reminder.Messages()
	require.Len(t, msgs, 5)
	msgs[2] = "changed"
	assert.NotEqual(t, "changed", reminder.NewPicker(stubSource{n: 2}).Pick())
}
