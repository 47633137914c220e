// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the console binary.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in cmd/console/commands
// and dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, signal-aware contexts, per-command loggers, and
// structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go on top of the shared editdist package.
//
// Errors returned by Run functions are categorized [ToolError] values
// where the distinction matters to callers, and [ExitError] when a
// command has already written its own output and only needs a non-zero
// exit code.
package cli
