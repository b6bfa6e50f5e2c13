package service

// Task is a task as reported by a remote source.
type Task struct {
	ID     string
	Title  string
	Status string // "needsAction" or "completed"
}

// TaskList is a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}
