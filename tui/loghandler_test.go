// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestLogHandlerEnabled(t *testing.T) {
	handler := NewLogHandler(slog.LevelWarn)

	tests := []struct {
		level slog.Level
		want  bool
	}{
		{slog.LevelDebug, false},
		{slog.LevelInfo, false},
		{slog.LevelWarn, true},
		{slog.LevelError, true},
	}
	for _, test := range tests {
		if got := handler.Enabled(context.Background(), test.level); got != test.want {
			t.Errorf("Enabled(%v) = %v, want %v", test.level, got, test.want)
		}
	}
}

func TestLogHandlerWithoutProgram(t *testing.T) {
	handler := NewLogHandler(slog.LevelInfo)
	record := slog.NewRecord(time.Now(), slog.LevelInfo, "listener ready", 0)

	// Records logged before SetProgram are dropped, not an error.
	if err := handler.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle without program: %v", err)
	}
}

func TestLogHandlerSummary(t *testing.T) {
	handler := NewLogHandler(slog.LevelInfo)

	record := slog.NewRecord(time.Now(), slog.LevelWarn, "listener saturated", 0)
	record.AddAttrs(slog.Int("queue", 12), slog.String("peer", "10.0.0.8"))

	got := handler.summary(record)
	want := "listener saturated (queue=12, peer=10.0.0.8)"
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestLogHandlerSummaryWithoutAttrs(t *testing.T) {
	handler := NewLogHandler(slog.LevelInfo)
	record := slog.NewRecord(time.Now(), slog.LevelInfo, "session closed", 0)

	if got := handler.summary(record); got != "session closed" {
		t.Errorf("summary = %q, want %q", got, "session closed")
	}
}

func TestLogHandlerGroups(t *testing.T) {
	base := NewLogHandler(slog.LevelInfo)
	derived := base.WithGroup("session").WithAttrs([]slog.Attr{slog.Int("id", 7)})
	handler, ok := derived.(*LogHandler)
	if !ok {
		t.Fatalf("WithAttrs returned %T, want *LogHandler", derived)
	}

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "client gone", 0)
	record.AddAttrs(slog.String("cause", "eof"))

	got := handler.summary(record)
	want := "client gone (session.id=7, session.cause=eof)"
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}
