// Package service defines the read-only interface to a remote task source.
package service

import (
	"context"
	"errors"
)

var (
	// ErrListNotFound is returned by ResolveList when no list matches.
	ErrListNotFound = errors.New("list not found")

	// ErrAmbiguousList is returned by ResolveList when more than one list matches.
	ErrAmbiguousList = errors.New("ambiguous list name")
)

// Service reads task lists from a backend.
// Commands only see this interface, never the Google SDK.
type Service interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in API order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns an error wrapping ErrListNotFound or ErrAmbiguousList.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// ListOpenTasks returns every open task of a list in API order,
	// following page tokens until the backend reports no further page.
	ListOpenTasks(ctx context.Context, listID string) ([]Task, error)
}

// PageSize is the number of tasks requested per backend page.
const PageSize = 100
