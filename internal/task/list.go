package task

import (
	"errors"
	"fmt"

	"github.com/tiwariParth/ailfred/internal/models"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// List manages the ordered collection of tasks for a session.
// Indices taken by its methods are 1-based, as the user sees them.
type List struct {
	tasks []models.Task
}

// NewList initializes a list holding tasks in the given order.
func NewList(tasks ...models.Task) *List {
	l := &List{tasks: make([]models.Task, 0, len(tasks))}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Add appends a task and returns the new size of the list.
func (l *List) Add(t models.Task) int {
	l.tasks = append(l.tasks, t)
	return len(l.tasks)
}

// Delete removes and returns the task at index. Later tasks move up by one.
func (l *List) Delete(index int) (models.Task, error) {
	i, err := l.position(index)
	if err != nil {
		return models.Task{}, err
	}

	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return removed, nil
}

// Mark marks the task at index as done and returns it.
func (l *List) Mark(index int) (models.Task, error) {
	i, err := l.position(index)
	if err != nil {
		return models.Task{}, err
	}

	l.tasks[i].MarkAsDone()
	return l.tasks[i], nil
}

// Unmark marks the task at index as not done and returns it.
func (l *List) Unmark(index int) (models.Task, error) {
	i, err := l.position(index)
	if err != nil {
		return models.Task{}, err
	}

	l.tasks[i].MarkAsUndone()
	return l.tasks[i], nil
}

// All returns a copy of the tasks in list order.
func (l *List) All() []models.Task {
	out := make([]models.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

func (l *List) position(index int) (int, error) {
	if index < 1 || index > len(l.tasks) {
		return 0, fmt.Errorf("%w: %d (list has %d tasks)", ErrIndexOutOfRange, index, len(l.tasks))
	}
	return index - 1, nil
}
