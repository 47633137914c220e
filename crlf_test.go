// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bytes"
	"fmt"
	"io"
	"testing"
)

func TestCRLFWriter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no newline", input: "plain", want: "plain"},
		{name: "single newline", input: "a\n", want: "a\r\n"},
		{name: "embedded newlines", input: "a\nb\nc", want: "a\r\nb\r\nc"},
		{name: "consecutive newlines", input: "\n\n", want: "\r\n\r\n"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buffer bytes.Buffer
			w := CRLFWriter(&buffer)

			n, err := io.WriteString(w, tt.input)
			if err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if n != len(tt.input) {
				t.Errorf("Write() n = %d, want %d (the count reflects input bytes)", n, len(tt.input))
			}
			if got := buffer.String(); got != tt.want {
				t.Errorf("wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCRLFWriterSplitWrites(t *testing.T) {
	var buffer bytes.Buffer
	w := CRLFWriter(&buffer)

	for _, chunk := range []string{"a", "\n", "b\nc", "\n"} {
		if _, err := io.WriteString(w, chunk); err != nil {
			t.Fatalf("Write(%q) error = %v", chunk, err)
		}
	}
	want := "a\r\nb\r\nc\r\n"
	if got := buffer.String(); got != want {
		t.Errorf("wrote %q, want %q", got, want)
	}
}

func TestCRLFWriterPropagatesErrors(t *testing.T) {
	w := CRLFWriter(shortWriter{})
	if _, err := io.WriteString(w, "line\n"); err == nil {
		t.Error("Write() error = nil, want underlying write failure")
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return 0, fmt.Errorf("closed") }
