// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package menu defines the command tree and argument-matching engine at the
// heart of an interactive console: menus, items, parameter schemas, the line
// tokenizer, the matcher that binds raw tokens against a schema, and the
// structured help data derived from declarations.
//
// A console is composed ahead of time as a tree of [Menu] values. Each menu
// holds an ordered list of [Item] entries; an item either invokes a
// [HandlerFunc] against a declared []Parameter schema or descends into a
// nested submenu. The tree is immutable once built and may be shared by any
// number of sessions concurrently; per-invocation state lives entirely in
// the [Args] value handed to the handler.
//
// [Tokenize] splits a completed input line into a command word and raw
// argument tokens on whitespace. [Match] classifies those tokens against an
// item's schema: positional tokens fill [Mandatory] then [Optional]
// parameters in declaration order, while --name and --name=value tokens bind
// [Named] and [NamedValue] parameters wherever they appear. Matching either
// produces an [Args] set or fails with a classified [*Error]; supplied flags
// that no parameter declares are recorded on the Args rather than failing
// the match, so the embedding session decides how strict to be.
//
// [Menu.Validate] checks tree well-formedness at composition time: item
// variants, duplicate or reserved command words, parameter ordering, and
// menu cycles. The matcher assumes a validated tree.
//
// This package performs no I/O. Session state (the menu stack, line
// accumulation, prompts, builtin help and exit commands) lives in the
// console package; front-ends and transports layer above that.
package menu
