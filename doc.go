// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package console runs interactive sessions over a menu tree: it owns the
// menu stack, accumulates input bytes into lines, dispatches commands, and
// reports interpreter errors through the session output.
//
// A [Session] is created over a validated [menu.Menu] tree and an output
// writer, then driven in one of two ways. Byte-oriented transports feed
// [Session.InputByte] with raw input; the session accumulates a line in a
// fixed-capacity buffer, handling backspace, local echo, and overflow. A
// line-editing front-end that manages its own cursor and history instead
// feeds completed lines to [Session.InputLine], bypassing accumulation
// entirely. A session is driven by exactly one of the two for its lifetime.
//
// Navigation follows the dispatched commands: a submenu item pushes its
// menu onto the stack and fires the menu's entry hook, the builtin exit
// command fires the exit hook and pops, and the builtin help command lists
// the current menu or details one command's parameters. The stack starts at
// the root menu and never exceeds its configured maximum depth. All
// interpreter errors are recoverable: the session reports them and returns
// to the prompt, and the stack changes only after a fully successful match.
//
// The menu tree is immutable and may be shared by any number of sessions;
// everything else in a Session belongs to that session alone and must not
// be touched from more than one goroutine without external coordination.
package console
