package core

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/flowstate-dev/focusring/pkg/models"
)

// TaskList is the in-memory checklist for the current sitting. Tasks keep
// insertion order, are never deleted, and do not survive the process.
type TaskList struct {
	tasks []models.Task
}

// NewTaskList creates an empty task list.
func NewTaskList() *TaskList {
	return &TaskList{}
}

// Add appends a task with the given text and a fresh ULID. Surrounding
// whitespace is trimmed first; text that is empty after trimming is rejected
// silently and the list stays unchanged. The returned bool reports whether a
// task was appended.
func (l *TaskList) Add(text string) (models.Task, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.Task{}, false
	}
	t := models.Task{
		ID:      ulid.Make().String(),
		Text:    trimmed,
		Created: time.Now(),
	}
	l.tasks = append(l.tasks, t)
	return t, true
}

// Toggle flips the done flag of the task with the given id and reports
// whether a task matched. All other tasks are untouched.
func (l *TaskList) Toggle(id string) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Done = !l.tasks[i].Done
			return true
		}
	}
	return false
}

// Tasks returns a copy of the list in insertion order.
func (l *TaskList) Tasks() []models.Task {
	out := make([]models.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}
