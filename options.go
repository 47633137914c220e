// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "log/slog"

const (
	// DefaultLineCapacity is the accumulation buffer size when
	// [WithLineCapacity] is not given. Input lines longer than the
	// capacity are discarded whole and reported as overflow.
	DefaultLineCapacity = 512

	// DefaultMaxDepth is the menu stack limit when [WithMaxDepth] is not
	// given. Submenu entry past the limit is reported and refused.
	DefaultMaxDepth = 8
)

// Option configures a [Session] at construction.
type Option func(*Session)

// WithPrompt replaces the default "> " prompt. The function receives the
// menu labels on the stack; [PathPrompt] is a ready-made renderer that
// shows the navigation path.
func WithPrompt(prompt PromptFunc) Option {
	return func(s *Session) { s.prompt = prompt }
}

// WithEcho controls local echo of bytes fed to [Session.InputByte].
// Echo is on by default, for transports like serial lines and raw-mode
// terminals that display nothing on their own. Line-mode transports where
// the client renders its own typing should turn it off. Echo has no effect
// on [Session.InputLine].
func WithEcho(enabled bool) Option {
	return func(s *Session) { s.echo = enabled }
}

// WithLineCapacity sets the fixed size of the accumulation buffer.
func WithLineCapacity(capacity int) Option {
	return func(s *Session) { s.lineCapacity = capacity }
}

// WithMaxDepth sets the menu stack limit, counting the root.
func WithMaxDepth(depth int) Option {
	return func(s *Session) { s.maxDepth = depth }
}

// WithContext attaches a caller-owned value handed to every handler and
// hook. The session never inspects it.
func WithContext(context any) Option {
	return func(s *Session) { s.context = context }
}

// WithLogger sets the logger for session lifecycle and dispatch debug
// events. Sessions log nowhere by default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithRootExit selects what the exit command does at the root menu.
// The default is [RootExitIgnore].
func WithRootExit(policy RootExitPolicy) Option {
	return func(s *Session) { s.rootExit = policy }
}

// WithSuggestions controls "did you mean" suggestions on unrecognized
// command words. On by default.
func WithSuggestions(enabled bool) Option {
	return func(s *Session) { s.suggest = enabled }
}
