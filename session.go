// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/bureau-foundation/console/lib/editdist"
	"github.com/bureau-foundation/console/menu"
)

// suggestionDistance is the maximum edit distance at which an unrecognized
// command word earns a "did you mean" suggestion.
const suggestionDistance = 3

// Session is one interactive console over a shared menu tree. It holds the
// menu stack, the line accumulation buffer, and the output writer; see the
// package documentation for the input models. Methods return an error only
// when writing to the output fails; interpreter errors (unrecognized
// commands, argument mismatches, overflow) are reported through the output
// and leave the session ready for the next line.
type Session struct {
	output       io.Writer
	logger       *slog.Logger
	context      any
	prompt       PromptFunc
	rootExit     RootExitPolicy
	maxDepth     int
	lineCapacity int
	echo         bool
	suggest      bool

	stack  []*menu.Menu
	closed bool

	line       []byte
	overflowed bool
	skipLF     bool
}

// PromptFunc renders the prompt from the menu labels on the stack, root
// first. Returning "" suppresses prompt output entirely, for front-ends
// that draw their own prompt.
type PromptFunc func(path []string) string

// PathPrompt renders the navigation path into the prompt, as in
// "root/sub> ".
func PathPrompt(path []string) string {
	return strings.Join(path, "/") + "> "
}

// RootExitPolicy selects what the exit command does when only the root
// menu is on the stack.
type RootExitPolicy int

const (
	// RootExitIgnore treats exit at the root as a no-op: no hook fires,
	// no output is written, the session keeps running.
	RootExitIgnore RootExitPolicy = iota

	// RootExitClose fires the root menu's exit hook and closes the
	// session. Transports use this so a client typing exit at the root
	// ends the connection.
	RootExitClose
)

// New creates a session over the tree rooted at root, writing prompts,
// reports, and handler output to output. The tree is validated before use;
// see [menu.Menu.Validate] for what a sound tree requires. The session is
// inert until [Session.Start].
func New(root *menu.Menu, output io.Writer, options ...Option) (*Session, error) {
	if root == nil {
		return nil, errors.New("root menu is nil")
	}
	if output == nil {
		return nil, errors.New("output writer is nil")
	}
	if err := root.Validate(); err != nil {
		return nil, fmt.Errorf("invalid menu tree: %w", err)
	}

	s := &Session{
		output:       output,
		logger:       slog.New(slog.DiscardHandler),
		prompt:       func([]string) string { return "> " },
		maxDepth:     DefaultMaxDepth,
		lineCapacity: DefaultLineCapacity,
		echo:         true,
		suggest:      true,
	}
	for _, option := range options {
		option(s)
	}
	if s.maxDepth < 1 {
		return nil, fmt.Errorf("maximum depth %d is below 1", s.maxDepth)
	}
	if s.lineCapacity < 1 {
		return nil, fmt.Errorf("line capacity %d is below 1", s.lineCapacity)
	}

	s.stack = make([]*menu.Menu, 1, s.maxDepth)
	s.stack[0] = root
	s.line = make([]byte, 0, s.lineCapacity)
	return s, nil
}

// Start fires the root menu's entry hook and writes the first prompt.
// Call it once, before feeding any input.
func (s *Session) Start() error {
	s.fireHook(s.stack[0].Entry)
	return s.writePrompt()
}

// Closed reports whether the session has ended: exit was dispatched at the
// root under [RootExitClose], or a handler called RequestClose. A closed
// session ignores further input.
func (s *Session) Closed() bool {
	return s.closed
}

// Depth returns the number of menus on the stack. The root alone is depth 1.
func (s *Session) Depth() int {
	return len(s.stack)
}

// Path returns the menu labels from the root to the current menu.
func (s *Session) Path() []string {
	labels := make([]string, len(s.stack))
	for i, m := range s.stack {
		labels[i] = m.Label
	}
	return labels
}

// Current returns the menu at the top of the stack.
func (s *Session) Current() *menu.Menu {
	return s.stack[len(s.stack)-1]
}

// RequestClose asks the session to end after the current dispatch. The
// session writes no further prompt and ignores further input.
func (s *Session) RequestClose() {
	s.closed = true
}

// InputLine processes one completed line from an external line editor,
// bypassing the session's own accumulation. The line carries no terminator.
func (s *Session) InputLine(line string) error {
	if s.closed {
		return nil
	}
	return s.processLine(line)
}

// processLine validates, tokenizes, and dispatches one completed line,
// then re-arms the prompt unless the session closed.
func (s *Session) processLine(line string) error {
	if !utf8.ValidString(line) {
		if err := s.report(menu.InvalidInput("input is not valid UTF-8")); err != nil {
			return err
		}
		return s.writePrompt()
	}

	command, tokens := menu.Tokenize(line)
	if command == "" {
		return s.writePrompt()
	}

	if err := s.dispatch(command, tokens); err != nil {
		return err
	}
	if s.closed {
		return nil
	}
	return s.writePrompt()
}

// dispatch resolves one command word in the current menu and runs the
// transition it names. Builtins resolve first; validation reserves their
// words so an item can never be shadowed.
func (s *Session) dispatch(command string, tokens []string) error {
	switch command {
	case "help":
		return s.builtinHelp(tokens)
	case "exit":
		return s.builtinExit(tokens)
	}

	current := s.Current()
	item := current.Find(command)
	if item == nil {
		return s.reportUnrecognized(command)
	}

	if item.Submenu != nil {
		if len(s.stack) >= s.maxDepth {
			return s.report(menu.DepthExceeded("cannot enter %q: menu structure too deep", command))
		}
		s.stack = append(s.stack, item.Submenu)
		s.logger.Debug("menu entered", "menu", item.Submenu.Label, "depth", len(s.stack))
		s.fireHook(item.Submenu.Entry)
		return nil
	}

	args, err := menu.Match(item.Parameters, tokens)
	if err != nil {
		s.logger.Debug("match failed", "command", command, "error", err)
		return s.writef("%s: %v\n", command, err)
	}
	for _, name := range args.Unknown() {
		if err := s.writef("unknown argument %q\n", "--"+name); err != nil {
			return err
		}
	}

	s.logger.Debug("command dispatched", "command", command)
	invocation := &menu.Invocation{
		Menu:      current,
		Item:      item,
		Args:      args,
		Output:    s.output,
		Navigator: s,
		Context:   s.context,
	}
	if err := item.Handler(invocation); err != nil {
		return s.writef("error: %v\n", err)
	}
	return nil
}

// builtinExit ascends one menu, firing the exit hook of the menu being
// left before the pop completes. At the root the configured
// [RootExitPolicy] decides between a no-op and closing the session.
func (s *Session) builtinExit(tokens []string) error {
	if len(tokens) > 0 {
		return s.report(menu.TooManyArguments("too many arguments: exit takes none"))
	}

	if len(s.stack) == 1 {
		if s.rootExit == RootExitClose {
			s.fireHook(s.stack[0].Exit)
			s.closed = true
			s.logger.Debug("session closed", "reason", "root exit")
		}
		return nil
	}

	leaving := s.Current()
	s.fireHook(leaving.Exit)
	s.stack = s.stack[:len(s.stack)-1]
	s.logger.Debug("menu exited", "menu", leaving.Label, "depth", len(s.stack))
	return nil
}

// reportUnrecognized reports an unknown command word, with an edit-distance
// suggestion when a declared word (or builtin) is close enough.
func (s *Session) reportUnrecognized(command string) error {
	s.logger.Debug("command not found", "command", command)
	if s.suggest {
		candidates := make([]string, 0, len(s.Current().Items)+2)
		for _, item := range s.Current().Items {
			candidates = append(candidates, item.Command)
		}
		candidates = append(candidates, "help", "exit")
		if suggestion := editdist.Closest(command, candidates, suggestionDistance); suggestion != "" {
			return s.writef("command %q not found (did you mean %q?), try 'help'\n", command, suggestion)
		}
	}
	return s.writef("command %q not found, try 'help'\n", command)
}

// report writes one classified error to the output.
func (s *Session) report(err *menu.Error) error {
	s.logger.Debug("input rejected", "category", string(err.Category), "error", err)
	return s.writef("%v\n", err)
}

func (s *Session) fireHook(hook menu.HookFunc) {
	if hook != nil {
		hook(s.output, s.context)
	}
}

func (s *Session) writePrompt() error {
	text := s.prompt(s.Path())
	if text == "" {
		return nil
	}
	return s.write(text)
}

func (s *Session) write(text string) error {
	if _, err := io.WriteString(s.output, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (s *Session) writef(format string, args ...any) error {
	return s.write(fmt.Sprintf(format, args...))
}
