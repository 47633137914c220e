// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui implements a full-screen terminal front-end for a
// console menu tree. Built on bubbletea (Elm architecture), it pairs a
// scrollback viewport with a single input line, a fuzzy completion bar
// for the current menu's commands, and a status line that surfaces log
// records and dispatch failures.
//
// The package drives an ordinary [console.Session] whose output writer
// is an in-memory transcript. Each submitted line goes through
// [console.Session.InputLine]; whatever the dispatch wrote is drained
// into the scrollback afterwards. The session's prompt is suppressed
// (the input field renders it instead), so handlers and hooks observe
// exactly the behavior they would over a socket or a raw terminal.
//
// Data flow:
//
//	[keyboard] -> [Model] -> console.Session.InputLine
//	                 ^              |
//	                 |       (transcript buffer)
//	                 +--------------+
//	                 |
//	         [terminal output]
//
// [Run] wires the model into a bubbletea program with the alternate
// screen and mouse wheel scrolling; [NewModel] is exported for callers
// embedding the console into a larger bubbletea application.
package tui
