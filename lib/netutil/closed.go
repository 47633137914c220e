// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides connection teardown helpers shared by the
// console server and the attach client.
package netutil

import (
	"errors"
	"io"
	"net"
	"syscall"
)

// IsExpectedCloseError reports whether err is a normal connection
// termination: EOF, closed connection, broken pipe, or connection
// reset. These occur whenever one end of a console connection hangs up
// while the other still has a read or write in flight, as when a
// client drops mid-session or the server closes an idle connection.
//
// Full-close (closing the whole connection rather than half-close via
// CloseWrite) produces ECONNRESET and EPIPE instead of EOF on the
// surviving side. All four are expected and should not be logged as
// errors.
func IsExpectedCloseError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EPIPE || errno == syscall.ECONNRESET
	}
	return false
}
