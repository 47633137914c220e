// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package serve exposes a console menu tree as a line-oriented network
// service over TCP or a Unix socket.
//
// Every accepted connection runs an independent [console.Session] over
// the server's shared menu tree, with CRLF line discipline on output
// and the exit command at the root closing the connection. The
// [Config] type loads server settings from a YAML file named by the
// CONSOLE_CONFIG environment variable or a --config flag.
//
// Clients can be as plain as netcat or telnet; the attach command in
// cmd/console relays a raw-mode terminal for full key handling.
package serve
