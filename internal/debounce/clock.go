package debounce

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running.
	// Returns false if the callback already ran or the timer was already stopped.
	Stop() bool
}

// Clock schedules callbacks. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock is a Clock backed by the time package.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
