// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/bureau-foundation/console"
	"github.com/bureau-foundation/console/cmd/console/cli"
	"github.com/bureau-foundation/console/lineedit"
)

// DemoCommand returns the "demo" subcommand: the built-in tree on the
// local terminal with raw-mode line editing.
func DemoCommand() *cli.Command {
	return &cli.Command{
		Name:    "demo",
		Summary: "Run the demo console on this terminal",
		Description: `Run the built-in demo tree on this terminal.

The terminal is switched to raw mode and input runs through the line
editor: emacs movement and kill chords, arrow-key history, and Tab
completion over the current menu's commands. 'help' describes the
commands of the menu you are in; 'exit' leaves a sub-menu, and at the
root it ends the demo (as does Ctrl-D on an empty line).`,
		Usage: "console demo",
		Examples: []cli.Example{
			{
				Description: "Start the demo, then explore",
				Command:     "console demo",
			},
		},
		Run: runDemo,
	}
}

func runDemo(_ context.Context, args []string, logger *slog.Logger) error {
	if len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	stdinFd := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFd) {
		return cli.Validation("standard input is not a terminal").
			WithHint("The demo needs a real terminal for raw-mode editing. " +
				"To drive a console from a script, use 'console serve' and a socket client.")
	}

	oldState, err := term.MakeRaw(stdinFd)
	if err != nil {
		return cli.Internal("set terminal raw mode: %w", err)
	}
	defer term.Restore(stdinFd, oldState)

	// Raw mode disables ISIG, so Ctrl-C arrives as a byte. SIGTERM from
	// outside must still restore the terminal before exiting.
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGTERM)
	defer signal.Stop(signalChannel)
	go func() {
		<-signalChannel
		term.Restore(stdinFd, oldState)
		os.Exit(0)
	}()

	output := console.CRLFWriter(os.Stdout)

	session, err := console.New(demoTree(), output,
		// The editor owns the display line, so the session's prompt is
		// suppressed and the editor draws it instead.
		console.WithPrompt(func([]string) string { return "" }),
		console.WithRootExit(console.RootExitClose),
		console.WithLogger(logger),
	)
	if err != nil {
		return cli.Internal("session setup: %w", err)
	}

	editor := lineedit.New(output,
		lineedit.WithPrompt(console.PathPrompt(session.Path())),
		lineedit.WithHistory(lineedit.NewHistory(lineedit.DefaultHistoryCapacity)),
		lineedit.WithCompletion(func() []string {
			items := session.Current().Items
			words := make([]string, 0, len(items)+2)
			for _, item := range items {
				words = append(words, item.Command)
			}
			return append(words, "help", "exit")
		}),
	)

	if err := session.Start(); err != nil {
		return cli.Internal("session start: %w", err)
	}
	if err := editor.Redraw(); err != nil {
		return cli.Internal("terminal write: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		input, err := reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return cli.Internal("terminal read: %w", err)
		}

		line, done, err := editor.Feed(input)
		if errors.Is(err, io.EOF) {
			// Ctrl-D on an empty line.
			fmt.Fprintln(output)
			return nil
		}
		if err != nil {
			return cli.Internal("terminal write: %w", err)
		}
		if !done {
			continue
		}

		if err := session.InputLine(line); err != nil {
			return cli.Internal("dispatch: %w", err)
		}
		if session.Closed() {
			return nil
		}

		editor.SetPrompt(console.PathPrompt(session.Path()))
		if err := editor.Redraw(); err != nil {
			return cli.Internal("terminal write: %w", err)
		}
	}
}
