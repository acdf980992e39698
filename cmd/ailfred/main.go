package main

import (
	"context"
	"log/slog"
	"os"
)

func main() {
	cmd := NewRootCommand(os.Stdin, os.Stdout)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
