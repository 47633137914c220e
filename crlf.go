// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bytes"
	"io"
)

var crlf = []byte("\r\n")

// CRLFWriter wraps w so every \n written becomes \r\n, for socket clients
// and raw-mode terminals that do not translate newlines themselves. The
// session and its handlers write bare \n throughout; the transport decides
// the line discipline. The input stream must not already contain \r\n
// pairs.
func CRLFWriter(w io.Writer) io.Writer {
	return &crlfWriter{w: w}
}

type crlfWriter struct {
	w io.Writer
}

func (c *crlfWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			n, err := c.w.Write(p)
			return written + n, err
		}
		n, err := c.w.Write(p[:i])
		written += n
		if err != nil {
			return written, err
		}
		if _, err := c.w.Write(crlf); err != nil {
			return written, err
		}
		written++
		p = p[i+1:]
	}
	return written, nil
}
