package taskapp

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"taskapp/internal/debounce"
	"taskapp/internal/task"
)

// Saver is the effect run when a deferred save fires.
// tasks is the list value captured when the save was armed.
type Saver interface {
	Save(tasks []task.Task)
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(tasks []task.Task)

// Save implements Saver.
func (f SaverFunc) Save(tasks []task.Task) { f(tasks) }

// SaveRecord is what a LogSaver captures for one save.
type SaveRecord struct {
	Count int
	At    time.Time
}

// LogSaver is a placeholder backend. It records and logs the task count and
// performs no I/O.
type LogSaver struct {
	mu      sync.Mutex
	clock   debounce.Clock
	log     *logrus.Entry
	records []SaveRecord
}

// NewLogSaver creates a LogSaver.
func NewLogSaver(clock debounce.Clock, log *logrus.Entry) *LogSaver {
	return &LogSaver{clock: clock, log: log}
}

// Save implements Saver.
func (s *LogSaver) Save(tasks []task.Task) {
	rec := SaveRecord{Count: len(tasks), At: s.clock.Now()}

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()

	s.log.WithField("count", rec.Count).Info("saved tasks to backend")
}

// Records returns every save so far, oldest first.
func (s *LogSaver) Records() []SaveRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SaveRecord, len(s.records))
	copy(out, s.records)
	return out
}
