package session

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/tiwariParth/ailfred/internal/cli"
	"github.com/tiwariParth/ailfred/internal/ui"
)

// Session reads commands line by line and reports each outcome until bye or end of input.
type Session struct {
	cli    *cli.CLI
	ui     *ui.UI
	in     io.Reader
	prompt string
}

// Option configures a Session.
type Option func(*Session)

// WithPrompt prints p before reading each line.
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}

// New returns a session reading from in.
func New(c *cli.CLI, u *ui.UI, in io.Reader, opts ...Option) *Session {
	s := &Session{cli: c, ui: u, in: in}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run greets the user and processes input until bye or end of input.
// Command errors are shown and the loop continues. At end of input the list
// is saved before returning; a failed save is shown but does not fail the run.
func (s *Session) Run(ctx context.Context) error {
	s.ui.Greet()

	reader := bufio.NewReader(s.in)
	for {
		if err := ctx.Err(); err != nil {
			slog.Debug("session cancelled", "error", err)
			break
		}

		if s.prompt != "" {
			s.ui.Prompt(s.prompt)
		}
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			slog.Warn("input read failed", "error", readErr)
			break
		}

		if line := strings.TrimRight(raw, "\r\n"); strings.TrimSpace(line) != "" {
			if s.execute(ctx, line) {
				return nil
			}
		}
		if readErr != nil {
			break
		}
	}

	slog.Debug("end of input, saving tasks")
	if err := s.cli.Persist(ctx); err != nil {
		slog.Error("save at end of input failed", "error", err)
		s.ui.ShowError(err)
		return nil
	}
	s.ui.Show(cli.GoodbyeMessage)
	return nil
}

// execute runs one command line and reports whether the session should end.
func (s *Session) execute(ctx context.Context, line string) bool {
	res, err := s.cli.Execute(ctx, line)
	if res.Message != "" {
		s.ui.Show(res.Message)
	}
	if err != nil {
		slog.Debug("command failed", "line", line, "error", err)
		s.ui.ShowError(err)
	}
	return res.Exit
}
