// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package menu

import "io"

// Menu is one node of a console's command tree: a labelled, ordered
// collection of items, with optional hooks fired when a session enters or
// leaves it. Menus are immutable after composition and may be shared across
// sessions; all mutable state lives in the session that traverses them.
type Menu struct {
	// Label identifies the menu in prompts and navigation paths.
	Label string

	// Items are the commands available at this level, scanned linearly in
	// declaration order on lookup. The first item whose Command equals the
	// typed word wins.
	Items []*Item

	// Entry, if non-nil, runs when a session enters this menu: on submenu
	// descent, and for the root menu once at session start.
	Entry HookFunc

	// Exit, if non-nil, runs when a session leaves this menu via the exit
	// command, before the menu is popped from the stack. The root menu's
	// Exit runs only when the session is configured to close on root exit.
	Exit HookFunc
}

// Item is a single entry in a [Menu]: either a command bound to a handler
// with a declared parameter schema, or a descent into a nested submenu.
// Exactly one of Handler and Submenu must be set; [Menu.Validate] enforces
// this along with command word uniqueness.
type Item struct {
	// Command is the word that selects this item. It must be non-empty,
	// contain no whitespace, and be unique within its menu. The builtin
	// words "help" and "exit" are reserved.
	Command string

	// Help is the free-text description shown by the help command. Help
	// derivation substitutes [NoHelpText] when it is empty.
	Help string

	// Handler is invoked when the item matches and its schema binds
	// successfully. Set Handler for command items, Submenu for descent
	// items, never both.
	Handler HandlerFunc

	// Parameters declare the arguments the handler accepts, in the order
	// help should list them. Positional parameters must declare all
	// [Mandatory] entries before any [Optional] ones. Only meaningful
	// alongside Handler.
	Parameters []Parameter

	// Submenu is the menu a session descends into when this item matches.
	Submenu *Menu
}

// HookFunc is a menu entry or exit notification. Hooks perform
// caller-defined side effects against the session output and the shared
// context value; they cannot fail and cannot alter navigation.
type HookFunc func(output io.Writer, context any)

// HandlerFunc executes a matched command. A non-nil error is reported to
// the session output verbatim; it does not alter navigation or end the
// session.
type HandlerFunc func(invocation *Invocation) error

// Invocation carries everything a handler receives for one dispatch.
type Invocation struct {
	// Menu is the menu the item was found in (the session's current menu).
	Menu *Menu

	// Item is the matched item.
	Item *Item

	// Args is the bound argument set for the item's schema.
	Args *Args

	// Output writes to the session's transport.
	Output io.Writer

	// Navigator exposes the session's position in the tree.
	Navigator Navigator

	// Context is the caller-supplied session context value, threaded
	// through untouched.
	Context any
}

// Navigator is the read view of session navigation offered to handlers.
// The console session implements it. Navigation itself (submenu descent,
// exit) happens only through dispatched commands; a handler wanting the
// session to end requests it and the session honours the request after the
// dispatch completes.
type Navigator interface {
	// Depth returns the number of menus on the stack. The root alone is
	// depth 1.
	Depth() int

	// Path returns the menu labels from the root to the current menu.
	Path() []string

	// Current returns the menu at the top of the stack.
	Current() *Menu

	// RequestClose asks the session to end after the current dispatch.
	RequestClose()
}

// Find returns the first item whose command word equals command, or nil.
// Lookup is case-sensitive and exact.
func (m *Menu) Find(command string) *Item {
	for _, item := range m.Items {
		if item.Command == command {
			return item
		}
	}
	return nil
}
