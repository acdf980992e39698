package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tiwariParth/ailfred/internal/models"
	"github.com/tiwariParth/ailfred/internal/storage"
	"github.com/tiwariParth/ailfred/internal/task"
)

// GoodbyeMessage is returned by the bye command.
const GoodbyeMessage = "Bye. Hope to see you again soon!"

// Result is the outcome of a command: the text to show and whether the session should end.
type Result struct {
	Message string
	Exit    bool
}

// CLI interprets input lines against a task list and saves the list after every change.
type CLI struct {
	List  *task.List
	Store storage.Storage
	Dates models.DateParser
}

// NewCLI initializes a new CLI.
func NewCLI(list *task.List, store storage.Storage, dates models.DateParser) *CLI {
	return &CLI{List: list, Store: store, Dates: dates}
}

// Execute parses and runs one line of input.
//
// A command that changed the list but could not be saved returns its normal
// Result together with an error matching storage.ErrStorageIO.
func (c *CLI) Execute(ctx context.Context, line string) (Result, error) {
	cmd, err := Parse(line, c.Dates)
	if err != nil {
		return Result{}, err
	}
	return cmd.execute(ctx, c)
}

// Persist writes the whole list to storage.
func (c *CLI) Persist(ctx context.Context) error {
	if err := c.Store.Save(ctx, c.List.All()); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// persistChange saves after a mutation and keeps the result either way.
func (c *CLI) persistChange(ctx context.Context, res Result) (Result, error) {
	if err := c.Persist(ctx); err != nil {
		return res, fmt.Errorf("the change was made but may not survive a restart: %w", err)
	}
	return res, nil
}

func (Bye) execute(ctx context.Context, c *CLI) (Result, error) {
	if err := c.Persist(ctx); err != nil {
		return Result{}, err
	}
	return Result{Message: GoodbyeMessage, Exit: true}, nil
}

func (List) execute(_ context.Context, c *CLI) (Result, error) {
	tasks := c.List.All()
	if len(tasks) == 0 {
		return Result{Message: "List is currently empty!"}, nil
	}

	var b strings.Builder
	b.WriteString("Here are the tasks in your list:")
	for i, t := range tasks {
		fmt.Fprintf(&b, "\n%d. %s", i+1, t)
	}
	return Result{Message: b.String()}, nil
}

func (a Add) execute(ctx context.Context, c *CLI) (Result, error) {
	n := c.List.Add(a.Task)
	msg := fmt.Sprintf("Got it. I've added this task:\n  %s\n%s", a.Task, countLine(n))
	return c.persistChange(ctx, Result{Message: msg})
}

func (m Mark) execute(ctx context.Context, c *CLI) (Result, error) {
	t, err := c.List.Mark(m.Index)
	if err != nil {
		return Result{}, indexError(err, m.Index, c.List.Len())
	}
	return c.persistChange(ctx, Result{Message: "Nice! I've marked this task as done:\n  " + t.String()})
}

func (u Unmark) execute(ctx context.Context, c *CLI) (Result, error) {
	t, err := c.List.Unmark(u.Index)
	if err != nil {
		return Result{}, indexError(err, u.Index, c.List.Len())
	}
	return c.persistChange(ctx, Result{Message: "OK, I've marked this task as not done yet:\n  " + t.String()})
}

func (d Delete) execute(ctx context.Context, c *CLI) (Result, error) {
	t, err := c.List.Delete(d.Index)
	if err != nil {
		return Result{}, indexError(err, d.Index, c.List.Len())
	}
	msg := fmt.Sprintf("Noted. I've removed this task:\n  %s\n%s", t, countLine(c.List.Len()))
	return c.persistChange(ctx, Result{Message: msg})
}

func indexError(err error, index, size int) error {
	if !errors.Is(err, task.ErrIndexOutOfRange) {
		return err
	}
	if size == 0 {
		return commandError(ErrInvalidIndex, err, "There are no tasks in the list yet!")
	}
	return commandError(ErrInvalidIndex, err, fmt.Sprintf(
		"There is no task numbered %d! Please pick a number from 1 to %d.", index, size))
}

func countLine(n int) string {
	if n == 1 {
		return "Now you have 1 task in the list."
	}
	return fmt.Sprintf("Now you have %d tasks in the list.", n)
}
