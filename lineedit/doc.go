// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package lineedit provides a raw-mode line editor for interactive
// console sessions on a local terminal.
//
// The console package consumes finished lines and handles only the
// minimal in-line editing a dumb transport allows (backspace). When
// the peer is a real terminal in raw mode, this package supplies the
// rest: cursor movement, kill chords, history recall over a
// fixed-capacity [History] ring, and Tab completion of command words.
// [Editor.Feed] consumes the terminal byte stream one byte at a time
// and reports completed lines, which the caller then hands to a
// console session.
package lineedit
