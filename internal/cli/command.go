package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tiwariParth/ailfred/internal/models"
)

// Command is one parsed line of user input.
type Command interface {
	Name() string
	execute(ctx context.Context, c *CLI) (Result, error)
}

// Bye persists the list and ends the session.
type Bye struct{}

// List renders every task.
type List struct{}

// Add appends a new todo, deadline or event.
type Add struct {
	Task models.Task
}

// Mark marks the task at Index (1-based) as done.
type Mark struct {
	Index int
}

// Unmark marks the task at Index (1-based) as not done.
type Unmark struct {
	Index int
}

// Delete removes the task at Index (1-based).
type Delete struct {
	Index int
}

func (Bye) Name() string    { return "bye" }
func (List) Name() string   { return "list" }
func (a Add) Name() string  { return a.Task.Kind().String() }
func (Mark) Name() string   { return "mark" }
func (Unmark) Name() string { return "unmark" }
func (Delete) Name() string { return "delete" }

// Parse turns one input line into a Command. The line is split on its first
// space; the first word must match a command exactly.
func Parse(line string, dates models.DateParser) (Command, error) {
	name, rest, _ := strings.Cut(line, " ")

	switch name {
	case "bye":
		return Bye{}, nil
	case "list":
		return List{}, nil
	case "todo":
		t, err := models.NewTodo(rest)
		if err != nil {
			return nil, descriptionError(name, err)
		}
		return Add{Task: t}, nil
	case "deadline":
		return parseDated(name, rest, "/by", dates, models.NewDeadline)
	case "event":
		return parseDated(name, rest, "/at", dates, models.NewEvent)
	case "mark":
		i, err := parseIndex(name, rest)
		if err != nil {
			return nil, err
		}
		return Mark{Index: i}, nil
	case "unmark":
		i, err := parseIndex(name, rest)
		if err != nil {
			return nil, err
		}
		return Unmark{Index: i}, nil
	case "delete":
		i, err := parseIndex(name, rest)
		if err != nil {
			return nil, err
		}
		return Delete{Index: i}, nil
	default:
		return nil, commandError(ErrUnknownCommand, nil, "I'm sorry, but I don't know what that means :-(")
	}
}

type datedConstructor func(description string, date models.Date) (models.Task, error)

// parseDated handles "<description> /by <date>" and "<description> /at <date>".
func parseDated(name, rest, delim string, dates models.DateParser, newTask datedConstructor) (Command, error) {
	desc, when, found := strings.Cut(" "+rest+" ", " "+delim+" ")
	if !found {
		return nil, commandError(ErrMissingDelimiter, nil, fmt.Sprintf(
			"Please follow the syntax for the '%s' command: %s [description] %s [date].", name, name, delim))
	}

	if err := models.ValidateDescription(desc); err != nil {
		return nil, descriptionError(name, err)
	}

	date, err := dates.Parse(when)
	if err != nil {
		return nil, commandError(models.ErrInvalidDateFormat, err, fmt.Sprintf(
			"I can't read the date %q. Please use yyyy-mm-dd, e.g. 2023-10-15.", strings.TrimSpace(when)))
	}

	t, err := newTask(desc, date)
	if err != nil {
		return nil, descriptionError(name, err)
	}
	return Add{Task: t}, nil
}

func parseIndex(name, rest string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, commandError(ErrInvalidIndex, nil, fmt.Sprintf(
			"Please enter a valid index number, e.g. '%s 1'.", name))
	}
	return i, nil
}

func descriptionError(name string, err error) error {
	switch {
	case errors.Is(err, models.ErrEmptyDescription):
		return commandError(models.ErrEmptyDescription, nil, fmt.Sprintf(
			"The description of a %s cannot be empty.", name))
	case errors.Is(err, models.ErrReservedCharacter):
		return commandError(models.ErrReservedCharacter, nil, fmt.Sprintf(
			"The description of a %s cannot contain '%s'.", name, models.ReservedCharacter))
	default:
		return err
	}
}
