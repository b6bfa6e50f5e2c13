package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"taskapp/internal/debounce"
)

// ClockEvent records one scheduling operation on a FakeClock.
type ClockEvent struct {
	Op string        // "arm", "stop" or "fire"
	At time.Duration // offset from the clock's start
}

func (e ClockEvent) String() string {
	return fmt.Sprintf("%s@%s", e.Op, e.At)
}

// FakeClock is a manual debounce.Clock.
// Time only moves on Advance, and due callbacks run synchronously inside it.
type FakeClock struct {
	mu     sync.Mutex
	start  time.Time
	now    time.Time
	nextID int
	timers []*fakeTimer
	events []ClockEvent
	armed  chan struct{}
}

type fakeTimer struct {
	clock *FakeClock
	id    int
	when  time.Time
	fn    func()
	done  bool
}

// NewFakeClock creates a FakeClock starting at the Unix epoch.
func NewFakeClock() *FakeClock {
	start := time.Unix(0, 0).UTC()
	return &FakeClock{
		start: start,
		now:   start,
		armed: make(chan struct{}, 256),
	}
}

// Now implements debounce.Clock.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Elapsed returns how far the clock has been advanced.
func (c *FakeClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Sub(c.start)
}

// Since returns the offset of t from the clock's start.
func (c *FakeClock) Since(t time.Time) time.Duration {
	return t.Sub(c.start)
}

// AfterFunc implements debounce.Clock.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) debounce.Timer {
	c.mu.Lock()
	c.nextID++
	t := &fakeTimer{clock: c, id: c.nextID, when: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	c.events = append(c.events, ClockEvent{Op: "arm", At: c.now.Sub(c.start)})
	c.mu.Unlock()

	select {
	case c.armed <- struct{}{}:
	default:
	}
	return t
}

// Stop implements debounce.Timer.
func (t *fakeTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	c.removeLocked(t)
	c.events = append(c.events, ClockEvent{Op: "stop", At: c.now.Sub(c.start)})
	return true
}

// Advance moves the clock forward by d, running every callback that falls due,
// in deadline order (ties in arming order).
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		t := c.nextDueLocked(target)
		if t == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = t.when
		t.done = true
		c.removeLocked(t)
		c.events = append(c.events, ClockEvent{Op: "fire", At: c.now.Sub(c.start)})
		c.mu.Unlock()

		t.fn()
	}
}

// Live returns the number of timers that are scheduled and not yet stopped or fired.
func (c *FakeClock) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Events returns the scheduling history.
func (c *FakeClock) Events() []ClockEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ClockEvent, len(c.events))
	copy(out, c.events)
	return out
}

// BlockUntilArmed waits until AfterFunc has been called n more times.
func (c *FakeClock) BlockUntilArmed(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		select {
		case <-c.armed:
		case <-ctx.Done():
			return fmt.Errorf("waiting for timer %d of %d: %w", i+1, n, ctx.Err())
		}
	}
	return nil
}

func (c *FakeClock) nextDueLocked(target time.Time) *fakeTimer {
	due := make([]*fakeTimer, 0, len(c.timers))
	for _, t := range c.timers {
		if !t.when.After(target) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].when.Equal(due[j].when) {
			return due[i].id < due[j].id
		}
		return due[i].when.Before(due[j].when)
	})
	return due[0]
}

func (c *FakeClock) removeLocked(t *fakeTimer) {
	for i, x := range c.timers {
		if x == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}
