// Package testutil provides fakes and helpers for tests.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"taskapp/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// FakeService is an in-memory service.Service.
type FakeService struct {
	mu    sync.RWMutex
	lists []service.TaskList
	tasks map[string][]service.Task // listID -> tasks

	// Error injection
	DefaultListErr   error
	ListListsErr     error
	ResolveListErr   error
	ListOpenTasksErr map[string]error // listID -> error

	// Calls counts ListOpenTasks page requests per list.
	Calls map[string]int
}

// NewFakeService creates a FakeService holding an empty default list.
func NewFakeService() *FakeService {
	return &FakeService{
		lists: []service.TaskList{
			{ID: DefaultListID, Title: "My Tasks", IsDefault: true},
		},
		tasks:            map[string][]service.Task{DefaultListID: nil},
		ListOpenTasksErr: make(map[string]error),
		Calls:            make(map[string]int),
	}
}

// AddList adds an empty list.
func (f *FakeService) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title})
	if _, ok := f.tasks[id]; !ok {
		f.tasks[id] = nil
	}
}

// AddTask adds an open task to a list.
func (f *FakeService) AddTask(listID, taskID, title string) {
	f.addTask(listID, service.Task{ID: taskID, Title: title, Status: "needsAction"})
}

// AddCompletedTask adds a completed task to a list.
func (f *FakeService) AddCompletedTask(listID, taskID, title string) {
	f.addTask(listID, service.Task{ID: taskID, Title: title, Status: "completed"})
}

func (f *FakeService) addTask(listID string, t service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[listID] = append(f.tasks[listID], t)
}

// DefaultList implements service.Service.
func (f *FakeService) DefaultList(ctx context.Context) (service.TaskList, error) {
	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return service.TaskList{}, errors.New("no default list")
}

// ListLists implements service.Service.
func (f *FakeService) ListLists(ctx context.Context) ([]service.TaskList, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.TaskList, len(f.lists))
	copy(result, f.lists)
	return result, nil
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	if f.ResolveListErr != nil {
		return service.TaskList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	name = strings.TrimSpace(name)
	var matches []service.TaskList
	for _, l := range f.lists {
		if strings.EqualFold(strings.TrimSpace(l.Title), name) {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrListNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrAmbiguousList, name)
	}
}

// ListOpenTasks implements service.Service.
// It reads the open tasks in pages of service.PageSize, counting each page in Calls.
func (f *FakeService) ListOpenTasks(ctx context.Context, listID string) ([]service.Task, error) {
	if err := f.ListOpenTasksErr[listID]; err != nil {
		f.mu.Lock()
		f.Calls[listID]++
		f.mu.Unlock()
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tasks, ok := f.tasks[listID]
	if !ok {
		f.Calls[listID]++
		return nil, errors.New("not found")
	}

	var open []service.Task
	for _, t := range tasks {
		if t.Status == "needsAction" {
			open = append(open, t)
		}
	}

	var result []service.Task
	for start := 0; ; start += service.PageSize {
		f.Calls[listID]++
		end := min(start+service.PageSize, len(open))
		result = append(result, open[start:end]...)
		if end == len(open) {
			return result, nil
		}
	}
}
