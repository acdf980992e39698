package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tiwariParth/ailfred/internal/app"
	"github.com/tiwariParth/ailfred/internal/config"
	"github.com/tiwariParth/ailfred/internal/models"
	"github.com/tiwariParth/ailfred/internal/storage"
	"github.com/tiwariParth/ailfred/internal/storage/file"
	"github.com/tiwariParth/ailfred/internal/storage/memory"
	"github.com/tiwariParth/ailfred/internal/ui"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "ailfred",
		Usage:     "Your personal task tracker",
		UsageText: "ailfred [options]  (then type commands: todo, deadline, event, list, mark, unmark, delete, bye)",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.StringFlag{
				Name:    "data-file",
				Aliases: []string{"f"},
				Usage:   "Path to the save file (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable coloured output",
			},
			&cli.BoolFlag{
				Name:  "ephemeral",
				Usage: "Keep tasks in memory only; nothing is written to disk",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, in, out)
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := cmd.String("data-file"); v != "" {
		cfg.DataFile = v
	}
	if cmd.Bool("debug") {
		cfg.LogLevel = "debug"
	}
	if cmd.Bool("no-color") {
		off := false
		cfg.Color = &off
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	ui.SetColor(cfg.ColorEnabled())

	var store storage.Storage
	if cmd.Bool("ephemeral") {
		slog.Info("running without persistence")
		store = memory.NewMemoryStore()
	} else {
		fs, err := file.NewFileStore(cfg.DataFile)
		if err != nil {
			return err
		}
		slog.Debug("using save file", "path", fs.Path())
		store = fs
	}

	a, err := app.Open(ctx, store, models.NewDateParser(cfg.DateLayouts...))
	if err != nil {
		if errors.Is(err, storage.ErrCorruptSaveFile) {
			err = fmt.Errorf("%w; repair or remove %s and retry", err, cfg.DataFile)
		}
		ui.New(out).ShowError(err)
		return err
	}
	return a.Run(ctx, in, out, cfg.PromptText())
}
