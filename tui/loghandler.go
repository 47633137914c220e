// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// logMsg delivers a slog record to the model for display in the
// status line. Only records at or above the handler's configured
// level are delivered.
type logMsg struct {
	// Summary is the human-readable one-line rendering of the record.
	Summary string

	// Level selects the status-line style (warn vs error).
	Level slog.Level
}

// statusFadeMsg is sent after a delay to clear the status-line message
// and restore the keyboard help text.
type statusFadeMsg struct{}

// statusFadeDelay is how long log records stay visible in the status
// line before fading back to the help text.
const statusFadeDelay = 5 * time.Second

// LogHandler is a slog.Handler that routes log records into the
// running TUI as status-line messages, so menu handlers and background
// goroutines can log without corrupting the alt-screen display.
// Records below the configured level are silently dropped.
//
// Create the handler before the program starts and pass it to [Run]
// via [WithLogHandler]; Run wires it to the tea.Program once the
// program exists. Records arriving before then are dropped.
//
// All handlers derived via WithAttrs/WithGroup share the same program
// pointer, so wiring the root handler covers every derived handler.
type LogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	groups  []string
}

// NewLogHandler creates a handler that delivers log records at or
// above the given level to the TUI status line.
func NewLogHandler(level slog.Level) *LogHandler {
	return &LogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the bubbletea program that receives log messages.
// Safe to call from any goroutine. [Run] calls this for handlers
// passed via [WithLogHandler].
func (handler *LogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled reports whether the handler is interested in records at the
// given level.
func (handler *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats the record and sends it to the bubbletea program.
// If the program has not been set yet, the record is silently dropped.
func (handler *LogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}
	program.Send(logMsg{Summary: handler.summary(record), Level: record.Level})
	return nil
}

// summary renders the record as "message (key=value, ...)", with the
// handler's open groups joined into each key.
func (handler *LogHandler) summary(record slog.Record) string {
	parts := make([]string, 0, len(handler.attrs)+record.NumAttrs())
	for _, attr := range handler.attrs {
		parts = append(parts, handler.formatAttr(attr))
	}
	record.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, handler.formatAttr(attr))
		return true
	})

	if len(parts) == 0 {
		return record.Message
	}
	return record.Message + " (" + strings.Join(parts, ", ") + ")"
}

func (handler *LogHandler) formatAttr(attr slog.Attr) string {
	key := attr.Key
	if len(handler.groups) > 0 {
		key = strings.Join(handler.groups, ".") + "." + key
	}
	return fmt.Sprintf("%s=%s", key, attr.Value)
}

// WithAttrs returns a new handler with the given attributes appended.
// The derived handler shares the same atomic program pointer, so
// SetProgram on the root handler propagates automatically.
func (handler *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   append(slices.Clone(handler.attrs), attrs...),
		groups:  slices.Clone(handler.groups),
	}
}

// WithGroup returns a new handler with the given group name appended.
// The derived handler shares the same atomic program pointer, so
// SetProgram on the root handler propagates automatically.
func (handler *LogHandler) WithGroup(name string) slog.Handler {
	return &LogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   slices.Clone(handler.attrs),
		groups:  append(slices.Clone(handler.groups), name),
	}
}
