// Package taskapp owns the task list and its debounced save.
//
// An App holds an ordered list of tasks. Every append replaces the list with a
// new value and synchronously notifies registered observers. The app registers
// its own observer that re-arms a deferred save for the latest list, so a burst
// of appends results in a single save once input settles.
package taskapp

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"taskapp/internal/debounce"
	"taskapp/internal/task"
)

// SaveDelay is the quiet period between the last list change and the save.
const SaveDelay = 5 * time.Second

// Observer is called with the new list after every change.
// The slice must not be modified.
type Observer func(tasks []task.Task)

// App owns a task list and schedules saves when it changes.
type App struct {
	mu        sync.Mutex
	tasks     []task.Task
	observers []observerEntry
	nextID    uint64
	closed    bool

	clock   debounce.Clock
	log     *logrus.Entry
	saver   Saver
	saves   *debounce.Debouncer
	saveSub *Subscription
}

type observerEntry struct {
	id uint64
	fn Observer
}

// Option configures an App.
type Option func(*App)

// WithClock sets the clock that drives the save delay.
func WithClock(c debounce.Clock) Option {
	return func(a *App) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logrus.Entry) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithSaver sets the save effect. Defaults to a LogSaver.
func WithSaver(s Saver) Option {
	return func(a *App) {
		if s != nil {
			a.saver = s
		}
	}
}

// New creates an app with an empty list.
// Creation counts as the first change, so a save of the empty list is armed immediately.
func New(opts ...Option) *App {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	a := &App{
		tasks: []task.Task{},
		clock: debounce.RealClock{},
		log:   logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.saver == nil {
		a.saver = NewLogSaver(a.clock, a.log)
	}

	a.saves = debounce.New(SaveDelay,
		debounce.WithClock(a.clock),
		debounce.WithLogger(a.log),
	)
	a.saveSub = a.OnChange(a.scheduleSave)

	a.mu.Lock()
	a.notifyLocked()
	a.mu.Unlock()
	return a
}

// AddTask appends t to the list and notifies observers.
// It cannot fail. After Close the task is still appended but no save is armed.
func (a *App) AddTask(t task.Task) {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := make([]task.Task, len(a.tasks), len(a.tasks)+1)
	copy(next, a.tasks)
	a.tasks = append(next, t)

	a.log.WithFields(logrus.Fields{
		"id":    t.ID,
		"count": len(a.tasks),
	}).Debug("task added")

	a.notifyLocked()
}

// Tasks returns the current list.
func (a *App) Tasks() []task.Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]task.Task, len(a.tasks))
	copy(out, a.tasks)
	return out
}

// Len returns the number of tasks.
func (a *App) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.tasks)
}

// OnChange registers fn to be called after every change, in registration order.
// Observers run with the app locked and must not call back into the App.
func (a *App) OnChange(fn Observer) *Subscription {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.nextID++
	a.observers = append(a.observers, observerEntry{id: a.nextID, fn: fn})
	return &Subscription{id: a.nextID, app: a}
}

func (a *App) unsubscribe(id uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.unsubscribeLocked(id)
}

func (a *App) unsubscribeLocked(id uint64) {
	for i, o := range a.observers {
		if o.id == id {
			a.observers = append(a.observers[:i:i], a.observers[i+1:]...)
			return
		}
	}
}

func (a *App) notifyLocked() {
	for _, o := range a.observers {
		o.fn(a.tasks)
	}
}

// scheduleSave captures the list value and re-arms the deferred save for it.
func (a *App) scheduleSave(tasks []task.Task) {
	saver := a.saver
	a.saves.Trigger(func() {
		saver.Save(tasks)
	})
}

// SaveState reports whether a save is armed.
func (a *App) SaveState() debounce.State {
	return a.saves.State()
}

// Wait blocks until no save is armed, either because it ran or was cancelled,
// or until ctx is done.
func (a *App) Wait(ctx context.Context) error {
	return a.saves.Wait(ctx)
}

// Close tears the app down: it stops scheduling saves, cancels an armed one
// and waits for a save that has already started. No save runs after Close returns.
// Close is idempotent.
func (a *App) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	a.unsubscribeLocked(a.saveSub.id)
	a.mu.Unlock()

	// The app lock is released so a running Saver may still read the app.
	if a.saves.Stop() {
		a.log.Debug("clearing pending save")
	}
}

// Subscription is a registered change observer.
type Subscription struct {
	id   uint64
	app  *App
	once sync.Once
}

// Unsubscribe removes the observer. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.app.unsubscribe(s.id)
	})
}
