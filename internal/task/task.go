// Package task defines the task record owned by the app.
package task

import (
	"strings"

	"github.com/google/uuid"
)

// Task is a single task record.
// The app treats it as an opaque value; only sources and renderers look at the fields.
type Task struct {
	ID    string
	Title string
}

// New creates a task with a freshly generated ID.
func New(title string) Task {
	return Task{
		ID:    uuid.NewString(),
		Title: strings.TrimSpace(title),
	}
}

// WithID creates a task that keeps an ID assigned by an external source.
// An empty id gets a generated one.
func WithID(id, title string) Task {
	if id == "" {
		return New(title)
	}
	return Task{ID: id, Title: strings.TrimSpace(title)}
}
