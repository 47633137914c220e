// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lineedit

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultHistoryCapacity is the history ring size when [NewHistory] is
// given a capacity below 1.
const DefaultHistoryCapacity = 256

// History is a fixed-capacity ring of accepted input lines, oldest first.
// Appending past the capacity drops the oldest entry. Blank lines and
// lines identical to the most recent entry are not recorded, so stepping
// back through history never repeats the line just typed.
//
// A History belongs to one editor and one session; it is not safe for
// concurrent use.
type History struct {
	entries []string
	start   int
	count   int
}

// NewHistory creates a history ring holding at most capacity lines.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{entries: make([]string, capacity)}
}

// Append records an accepted line. Blank lines and a line equal to the
// newest entry are ignored.
func (h *History) Append(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if h.count > 0 && h.Entry(h.count-1) == line {
		return
	}

	position := (h.start + h.count) % len(h.entries)
	h.entries[position] = line
	if h.count < len(h.entries) {
		h.count++
		return
	}
	h.start = (h.start + 1) % len(h.entries)
}

// Len returns the number of recorded lines.
func (h *History) Len() int {
	return h.count
}

// Entry returns the line at index i, where 0 is the oldest recorded
// line and Len()-1 the newest. Out-of-range indexes return "".
func (h *History) Entry(i int) string {
	if i < 0 || i >= h.count {
		return ""
	}
	return h.entries[(h.start+i)%len(h.entries)]
}

// Load replaces the ring contents with the lines of the file at path,
// newest last, keeping only the most recent capacity lines. A missing
// file is not an error; the ring is simply left empty.
func (h *History) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open history file: %w", err)
	}
	defer file.Close()

	h.start = 0
	h.count = 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		h.Append(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read history file: %w", err)
	}
	return nil
}

// Save writes the ring contents to the file at path, oldest first,
// replacing whatever the file held.
func (h *History) Save(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create history file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for i := 0; i < h.count; i++ {
		if _, err := writer.WriteString(h.Entry(i) + "\n"); err != nil {
			return fmt.Errorf("write history file: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}
