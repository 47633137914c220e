// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"io"
	"net"
)

// Relay copies bytes bidirectionally between a network connection and a
// local terminal: input (the terminal's keystrokes) flows into the
// connection, and everything the connection sends flows to output.
//
// Relay returns when the connection stops producing output, which is
// how a console server signals the end of a session. When input ends
// first (the user closed stdin), the connection's write side is
// half-closed so the server sees end of input while its remaining
// output still drains. The input copy cannot be interrupted; a caller
// relaying a terminal should exit promptly after Relay returns.
//
// Normal teardown errors (see [IsExpectedCloseError]) are swallowed.
func Relay(connection net.Conn, input io.Reader, output io.Writer) error {
	go func() {
		io.Copy(connection, input)
		type closeWriter interface{ CloseWrite() error }
		if half, ok := connection.(closeWriter); ok {
			half.CloseWrite()
		}
	}()

	if _, err := io.Copy(output, connection); err != nil && !IsExpectedCloseError(err) {
		return err
	}
	return nil
}
