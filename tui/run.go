// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/console"
	"github.com/bureau-foundation/console/lineedit"
	"github.com/bureau-foundation/console/menu"
)

type settings struct {
	theme          Theme
	banner         string
	prompt         console.PromptFunc
	handlerContext any
	logger         *slog.Logger
	logHandler     *LogHandler
	history        *lineedit.History
	historyPath    string
	profile        termenv.Profile
	profileSet     bool
	colorOutput    io.Writer
}

func newSettings() settings {
	return settings{
		theme:       DefaultTheme,
		prompt:      console.PathPrompt,
		history:     lineedit.NewHistory(lineedit.DefaultHistoryCapacity),
		colorOutput: os.Stdout,
	}
}

// Option configures the TUI.
type Option func(*settings)

// WithTheme overrides the default color theme.
func WithTheme(theme Theme) Option {
	return func(settings *settings) {
		settings.theme = theme
	}
}

// WithBanner writes banner as the first scrollback line, before the
// root menu's entry hook output.
func WithBanner(banner string) Option {
	return func(settings *settings) {
		settings.banner = banner
	}
}

// WithPrompt overrides the prompt shown on the input line. The default
// is [console.PathPrompt].
func WithPrompt(prompt console.PromptFunc) Option {
	return func(settings *settings) {
		settings.prompt = prompt
	}
}

// WithHandlerContext sets the opaque value passed to command handlers
// and hooks through [menu.Invocation].
func WithHandlerContext(handlerContext any) Option {
	return func(settings *settings) {
		settings.handlerContext = handlerContext
	}
}

// WithLogger sets the session logger. Without [WithLogHandler] the
// records go wherever the logger's own handler sends them; combining
// the two lets callers fan out to a file as well as the status line.
func WithLogger(logger *slog.Logger) Option {
	return func(settings *settings) {
		settings.logger = logger
	}
}

// WithLogHandler routes log records to the TUI status line. Unless
// [WithLogger] is also given, the session logger is built from this
// handler, so the session's own warnings surface in the status line
// too.
func WithLogHandler(handler *LogHandler) Option {
	return func(settings *settings) {
		settings.logHandler = handler
		if settings.logger == nil {
			settings.logger = slog.New(handler)
		}
	}
}

// WithHistory supplies a pre-populated history ring shared with the
// caller.
func WithHistory(history *lineedit.History) Option {
	return func(settings *settings) {
		settings.history = history
	}
}

// WithHistoryFile loads input history from path at startup and saves
// it back when the program exits. A missing file starts with empty
// history.
func WithHistoryFile(path string) Option {
	return func(settings *settings) {
		settings.historyPath = path
	}
}

// WithColorProfile pins the terminal color profile instead of
// detecting it from the environment. Tests use [termenv.Ascii] for
// style-free output.
func WithColorProfile(profile termenv.Profile) Option {
	return func(settings *settings) {
		settings.profile = profile
		settings.profileSet = true
	}
}

// Run drives a full-screen console over the tree rooted at root until
// the user exits (the exit command at the root, ctrl+d on an empty
// line, or ctrl+c). Canceling ctx also stops the program.
func Run(ctx context.Context, root *menu.Menu, options ...Option) error {
	model, err := NewModel(root, options...)
	if err != nil {
		return err
	}
	if model.historyPath != "" {
		if err := model.history.Load(model.historyPath); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		model.historyIndex = model.history.Len()
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if model.logHandler != nil {
		model.logHandler.SetProgram(program)
	}

	_, runErr := program.Run()
	if model.historyPath != "" {
		if err := model.history.Save(model.historyPath); err != nil && runErr == nil {
			runErr = fmt.Errorf("tui: %w", err)
		}
	}
	return runErr
}
