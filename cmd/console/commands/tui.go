// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/console/cmd/console/cli"
	"github.com/bureau-foundation/console/tui"
)

// TUICommand returns the "tui" subcommand: the demo tree in the
// full-screen bubbletea front-end.
func TUICommand() *cli.Command {
	var historyFile string
	var logLevel string

	return &cli.Command{
		Name:    "tui",
		Summary: "Run the demo console full-screen",
		Description: `Run the built-in demo tree in the full-screen console.

The screen splits into a scrollback viewport, an input line with fuzzy
Tab completion over the current menu's commands, and a status line.
Arrow keys recall history, PgUp/PgDn scroll the viewport, and the mouse
wheel works too. Log records from the session appear briefly in the
status line instead of corrupting the alternate screen.

Input history persists across runs in --history-file.`,
		Usage: "console tui [flags]",
		Examples: []cli.Example{
			{
				Description: "Run with history kept under XDG state",
				Command:     "console tui --history-file ~/.local/state/console/history",
			},
			{
				Description: "Surface debug-level session logs in the status line",
				Command:     "console tui --log-level debug",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("tui", pflag.ContinueOnError)
			flagSet.StringVar(&historyFile, "history-file", "", "load and save input history at this path")
			flagSet.StringVar(&logLevel, "log-level", "warn", "minimum status-line log level (debug, info, warn, error)")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return cli.Validation("standard output is not a terminal")
			}

			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return cli.Validation("invalid --log-level %q: expected debug, info, warn, or error", logLevel)
			}

			options := []tui.Option{
				tui.WithBanner("console demo (full-screen)"),
				// Session logs go to the status line, not stderr: stderr
				// writes would corrupt the alternate screen.
				tui.WithLogHandler(tui.NewLogHandler(level)),
			}
			if historyFile != "" {
				if err := os.MkdirAll(filepath.Dir(historyFile), 0o700); err != nil {
					return cli.Internal("create history directory: %w", err)
				}
				options = append(options, tui.WithHistoryFile(historyFile))
			}

			if err := tui.Run(ctx, demoTree(), options...); err != nil {
				return cli.Internal("tui: %w", err)
			}
			return nil
		},
	}
}
