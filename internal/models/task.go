package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyDescription  = errors.New("empty description")
	ErrReservedCharacter = errors.New("description contains a reserved character")
)

const (
	// FieldSeparator joins the fields of a save record.
	FieldSeparator = " | "

	// ReservedCharacter may not appear in a description so that records always split cleanly.
	ReservedCharacter = "|"
)

// Kind represents the variant of a task
type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Tag returns the single-letter tag used for display and in save records
func (k Kind) Tag() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

// KindFromTag maps a save-record tag back to its Kind
func KindFromTag(tag string) (Kind, bool) {
	switch tag {
	case "T":
		return KindTodo, true
	case "D":
		return KindDeadline, true
	case "E":
		return KindEvent, true
	default:
		return 0, false
	}
}

// Task represents one todo, deadline or event.
// The description and date are fixed at construction; only the done state changes.
type Task struct {
	kind        Kind
	description string
	done        bool
	date        Date
}

// NewTodo creates a todo task
func NewTodo(description string) (Task, error) {
	return newTask(KindTodo, description, Date{})
}

// NewDeadline creates a task due by the given date
func NewDeadline(description string, by Date) (Task, error) {
	return newTask(KindDeadline, description, by)
}

// NewEvent creates a task occurring at the given date
func NewEvent(description string, at Date) (Task, error) {
	return newTask(KindEvent, description, at)
}

func newTask(kind Kind, description string, date Date) (Task, error) {
	description = strings.TrimSpace(description)
	if err := ValidateDescription(description); err != nil {
		return Task{}, err
	}
	if kind != KindTodo && date.IsZero() {
		return Task{}, fmt.Errorf("%w: %s requires a date", ErrInvalidDateFormat, kind)
	}
	return Task{kind: kind, description: description, date: date}, nil
}

// ValidateDescription checks that a description can be stored and displayed.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if strings.Contains(description, ReservedCharacter) {
		return fmt.Errorf("%w %q", ErrReservedCharacter, ReservedCharacter)
	}
	return nil
}

// Kind returns which variant the task is.
func (t Task) Kind() Kind { return t.kind }

// Description returns the trimmed task text.
func (t Task) Description() string { return t.description }

// IsDone reports whether the task is marked as completed.
func (t Task) IsDone() bool { return t.done }

// Date returns the due date of a deadline or the date of an event. It is zero for todos.
func (t Task) Date() Date { return t.date }

// MarkAsDone marks the task as completed
func (t *Task) MarkAsDone() {
	t.done = true
}

// MarkAsUndone marks the task as not completed
func (t *Task) MarkAsUndone() {
	t.done = false
}

// String renders the task for the user, e.g. "[D][ ] return book (by: Jun 6 2023)".
func (t Task) String() string {
	status := " "
	if t.done {
		status = "X"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s][%s] %s", t.kind.Tag(), status, t.description)
	switch t.kind {
	case KindDeadline:
		fmt.Fprintf(&b, " (by: %s)", t.date)
	case KindEvent:
		fmt.Fprintf(&b, " (at: %s)", t.date)
	}
	return b.String()
}

// Serialize returns the save record for the task, e.g. "D | 0 | return book | Jun 6 2023".
func (t Task) Serialize() string {
	flag := "0"
	if t.done {
		flag = "1"
	}

	fields := []string{t.kind.Tag(), flag, t.description}
	if t.kind != KindTodo {
		fields = append(fields, t.date.String())
	}
	return strings.Join(fields, FieldSeparator)
}
