package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/tiwariParth/ailfred/internal/cli"
	"github.com/tiwariParth/ailfred/internal/models"
	"github.com/tiwariParth/ailfred/internal/session"
	"github.com/tiwariParth/ailfred/internal/storage"
	"github.com/tiwariParth/ailfred/internal/task"
	"github.com/tiwariParth/ailfred/internal/ui"
)

// App is a task tracker whose list has been restored from storage.
type App struct {
	store storage.Storage
	cli   *cli.CLI
}

// Open prepares the save location and loads the saved list. Any failure here
// is fatal: the session must not start from a partially loaded list.
func Open(ctx context.Context, store storage.Storage, dates models.DateParser) (*App, error) {
	if err := store.EnsureLocation(ctx); err != nil {
		return nil, fmt.Errorf("prepare storage: %w", err)
	}

	tasks, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	slog.Info("tasks loaded", "count", len(tasks))

	return &App{
		store: store,
		cli:   cli.NewCLI(task.NewList(tasks...), store, dates),
	}, nil
}

// CLI returns the command interpreter bound to the loaded list.
func (app *App) CLI() *cli.CLI {
	return app.cli
}

// Run starts an interactive session reading from in and writing to out.
func (app *App) Run(ctx context.Context, in io.Reader, out io.Writer, prompt string) error {
	var opts []session.Option
	if prompt != "" && isTerminal(in) {
		opts = append(opts, session.WithPrompt(prompt))
	}
	return session.New(app.cli, ui.New(out), in, opts...).Run(ctx)
}

// isTerminal reports whether r is an interactive terminal; prompts are only
// printed for those.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
