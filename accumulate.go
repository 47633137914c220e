// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"unicode/utf8"

	"github.com/bureau-foundation/console/menu"
)

// Control bytes the accumulator interprets. Everything else is line
// content.
const (
	byteBackspace = 0x08
	byteDelete    = 0x7F
)

// InputByte feeds one raw input byte to the session's line accumulator.
//
// Carriage return and line feed both terminate the line (a CRLF pair
// counts once); the completed line is tokenized and dispatched before
// InputByte returns. Backspace and delete remove the last character, a
// no-op on an empty line. Any other byte is appended while the fixed
// buffer has room.
//
// A line that outgrows the buffer is poisoned: the overflowing byte and
// everything after it up to the terminator are discarded, and one overflow
// report is written when the terminator arrives. Poisoning the whole line
// rather than truncating it means an overlong line can never dispatch as
// some shorter command.
//
// With echo enabled, content bytes are written back to the output as they
// arrive, backspace erases destructively, and the terminator echoes a
// newline. The returned error is always an output write failure; input
// problems are reported through the output itself.
func (s *Session) InputByte(input byte) error {
	if s.closed {
		return nil
	}

	if s.skipLF {
		s.skipLF = false
		if input == '\n' {
			return nil
		}
	}

	switch input {
	case '\r':
		s.skipLF = true
		return s.endOfLine()
	case '\n':
		return s.endOfLine()
	case byteBackspace, byteDelete:
		if s.overflowed || len(s.line) == 0 {
			return nil
		}
		_, size := utf8.DecodeLastRune(s.line)
		s.line = s.line[:len(s.line)-size]
		if s.echo {
			return s.write("\b \b")
		}
		return nil
	default:
		if s.overflowed {
			return nil
		}
		if len(s.line) == cap(s.line) {
			s.overflowed = true
			return nil
		}
		s.line = append(s.line, input)
		if s.echo {
			return s.writeByte(input)
		}
		return nil
	}
}

func (s *Session) writeByte(input byte) error {
	if _, err := s.output.Write([]byte{input}); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// endOfLine hands the accumulated line to dispatch and resets the buffer.
func (s *Session) endOfLine() error {
	line := string(s.line)
	overflowed := s.overflowed
	s.line = s.line[:0]
	s.overflowed = false

	if s.echo {
		if err := s.write("\n"); err != nil {
			return err
		}
	}
	if overflowed {
		if err := s.report(menu.LineOverflow("line exceeds %d bytes, input discarded", s.lineCapacity)); err != nil {
			return err
		}
		return s.writePrompt()
	}
	return s.processLine(line)
}
