// Package reminder decides when the periodic reminder banner is shown.
package reminder

import (
	"slices"
	"time"
)

var scheduleHours = []int{9, 12, 15, 18, 21}

// ScheduleHours returns the local hours at which a reminder may fire.
func ScheduleHours() []int {
	return slices.Clone(scheduleHours)
}

// State records the last hour a reminder fired. LastFiredHour is only
// meaningful while Fired is true.
type State struct {
	LastFiredHour int  `json:"last_fired_hour"`
	Fired         bool `json:"fired"`
}

// ShouldFire fires at most once per scheduled hour. Any hour outside the
// schedule clears the state so the next scheduled hour can fire again,
// including the same hour on a later day.
func ShouldFire(currentHour int, state State) (bool, State) {
	if !slices.Contains(scheduleHours, currentHour) {
		return false, State{}
	}
	if state.Fired && state.LastFiredHour == currentHour {
		return false, state
	}
	return true, State{LastFiredHour: currentHour, Fired: true}
}

// Clock reports the current local hour (0-23).
type Clock interface {
	NowHour() int
}

type SystemClock struct{}

func (SystemClock) NowHour() int {
	return time.Now().Hour()
}

// FixedClock always reports the same hour.
type FixedClock int

func (c FixedClock) NowHour() int {
	return int(c)
}
