// Package debounce implements a single-timer deferred action.
//
// A Debouncer is either Idle or Armed. Trigger cancels any armed action and
// arms a new one; the action runs once the delay elapses with no further
// Trigger or Cancel. At most one timer is live at any time.
package debounce

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// State is the lifecycle state of a Debouncer.
type State int

const (
	// Idle means no action is pending.
	Idle State = iota

	// Armed means an action is scheduled and has not yet run.
	Armed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	default:
		return "unknown"
	}
}

// Debouncer runs the most recently triggered action after a quiet period.
//
// All methods are safe for concurrent use. The action runs on the clock's
// goroutine, outside the internal lock, so it may call back into the Debouncer.
type Debouncer struct {
	mu    sync.Mutex
	clock Clock
	log   *logrus.Entry
	delay time.Duration

	state State
	timer Timer
	seq   uint64 // invalidates timer callbacks that lost a race with Cancel

	// idle is closed when the current armed period ends (fired or cancelled).
	idle chan struct{}

	// running is closed when the action currently executing returns.
	running chan struct{}
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithClock sets the clock used to schedule actions.
func WithClock(c Clock) Option {
	return func(d *Debouncer) {
		if c != nil {
			d.clock = c
		}
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *logrus.Entry) Option {
	return func(d *Debouncer) {
		if l != nil {
			d.log = l
		}
	}
}

// New creates an idle Debouncer with the given delay.
func New(delay time.Duration, opts ...Option) *Debouncer {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	d := &Debouncer{
		clock: RealClock{},
		log:   logrus.NewEntry(discard),
		delay: delay,
		idle:  make(chan struct{}),
	}
	close(d.idle)

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Trigger cancels any armed action and arms fn.
// fn runs once, delay after this call, unless Trigger or Cancel is called first.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()

	d.seq++
	seq := d.seq
	d.state = Armed
	d.idle = make(chan struct{})
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.fire(seq, fn)
	})
	d.log.WithField("delay", d.delay).Debug("armed deferred action")
}

func (d *Debouncer) fire(seq uint64, fn func()) {
	d.mu.Lock()
	if d.state != Armed || d.seq != seq {
		d.mu.Unlock()
		return
	}
	d.state = Idle
	d.timer = nil
	idle := d.idle
	running := make(chan struct{})
	d.running = running
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		if d.running == running {
			d.running = nil
		}
		d.mu.Unlock()
		close(running)
		close(idle)
	}()
	fn()
}

// Cancel disarms a pending action without running it.
// Cancelling an idle Debouncer is a no-op.
// Returns true if an armed action was cancelled.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

// Stop cancels an armed action and waits for one that already started.
// Once Stop returns no action is running. It must not be called from the action.
// Returns true if an armed action was cancelled.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	cancelled := d.cancelLocked()
	running := d.running
	d.mu.Unlock()

	if running != nil {
		<-running
	}
	return cancelled
}

// cancelLocked must be called with d.mu held.
func (d *Debouncer) cancelLocked() bool {
	if d.state != Armed {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.seq++
	d.state = Idle
	close(d.idle)
	d.log.Debug("cancelled deferred action")
	return true
}

// State returns the current state.
func (d *Debouncer) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Pending reports whether an action is armed.
func (d *Debouncer) Pending() bool {
	return d.State() == Armed
}

// Wait blocks until the current armed period ends or ctx is done.
// If the action fires, Wait returns after it has completed.
// Returns immediately when idle.
func (d *Debouncer) Wait(ctx context.Context) error {
	d.mu.Lock()
	idle := d.idle
	d.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
