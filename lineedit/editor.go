// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lineedit

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultCapacity is the maximum line length in runes when
// [WithCapacity] is not given.
const DefaultCapacity = 512

// Control bytes the editor acts on. Names follow the conventional
// terminal chords.
const (
	keyCtrlA     = 0x01
	keyCtrlB     = 0x02
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyCtrlE     = 0x05
	keyCtrlF     = 0x06
	keyBackspace = 0x08
	keyTab       = 0x09
	keyCtrlK     = 0x0b
	keyCtrlL     = 0x0c
	keyCtrlU     = 0x15
	keyCtrlW     = 0x17
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// maxPending bounds a partial escape or UTF-8 sequence; anything
// longer is garbage and gets dropped.
const maxPending = 32

// CompleteFunc returns the candidate command words for the menu the
// session currently shows. The editor calls it on Tab when the cursor
// sits at the end of the first word.
type CompleteFunc func() []string

// Option adjusts an [Editor] during [New].
type Option func(*Editor)

// WithPrompt sets the string written before the line on every redraw.
func WithPrompt(prompt string) Option {
	return func(editor *Editor) { editor.prompt = prompt }
}

// WithCapacity sets the maximum line length in runes. Input past the
// capacity rings the terminal bell and is discarded.
func WithCapacity(runes int) Option {
	return func(editor *Editor) {
		if runes > 0 {
			editor.capacity = runes
		}
	}
}

// WithHistory attaches a history ring. Up and Down arrows step through
// it; accepted lines are appended to it.
func WithHistory(history *History) Option {
	return func(editor *Editor) { editor.history = history }
}

// WithCompletion installs the Tab completion source.
func WithCompletion(complete CompleteFunc) Option {
	return func(editor *Editor) { editor.complete = complete }
}

// Editor accumulates a single input line from a raw-mode byte stream,
// echoing edits to its output. It understands the emacs movement and
// kill chords, arrow keys and Home/End/Delete escape sequences, history
// recall, and first-word Tab completion.
//
// The editor owns the display line: callers write a byte at a time to
// [Editor.Feed] and write nothing else to the terminal until Feed
// reports a completed line. After handling the line, call
// [Editor.Redraw] to show a fresh prompt.
//
// An Editor belongs to one terminal; it is not safe for concurrent use.
type Editor struct {
	output   io.Writer
	prompt   string
	capacity int
	history  *History
	complete CompleteFunc

	line    []rune
	cursor  int
	pending []byte
	skipLF  bool
	lastTab bool

	// recall is the history index currently shown, or -1 when the
	// line is live. stash holds the live line during recall.
	recall int
	stash  []rune
}

// New creates an editor writing echo and redraw output to output.
func New(output io.Writer, options ...Option) *Editor {
	editor := &Editor{
		output:   output,
		capacity: DefaultCapacity,
		recall:   -1,
	}
	for _, option := range options {
		option(editor)
	}
	return editor
}

// SetPrompt replaces the prompt used by the next redraw.
func (e *Editor) SetPrompt(prompt string) {
	e.prompt = prompt
}

// Line returns the current line content.
func (e *Editor) Line() string {
	return string(e.line)
}

// Cursor returns the cursor position in runes from the line start.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Redraw rewrites the prompt and line from the start of the terminal
// row and places the cursor.
func (e *Editor) Redraw() error {
	if err := e.write("\r\x1b[K" + e.prompt + string(e.line)); err != nil {
		return err
	}
	return e.moveColumns(e.cursor - len(e.line))
}

// Feed consumes one input byte. When the byte completes a line, Feed
// returns the line with done set; the terminal has already been moved
// to the next row. Ctrl-D on an empty line returns [io.EOF].
func (e *Editor) Feed(input byte) (line string, done bool, err error) {
	if e.skipLF {
		e.skipLF = false
		if input == '\n' {
			return "", false, nil
		}
	}
	if input != keyTab {
		e.lastTab = false
	}
	if len(e.pending) > 0 {
		return e.feedPending(input)
	}

	switch input {
	case '\r':
		e.skipLF = true
		return e.accept()
	case '\n':
		return e.accept()
	case keyCtrlA:
		return "", false, e.moveTo(0)
	case keyCtrlB:
		return "", false, e.moveTo(e.cursor - 1)
	case keyCtrlC:
		return "", false, e.cancel()
	case keyCtrlD:
		if len(e.line) == 0 {
			return "", false, io.EOF
		}
		return "", false, e.deleteAtCursor()
	case keyCtrlE:
		return "", false, e.moveTo(len(e.line))
	case keyCtrlF:
		return "", false, e.moveTo(e.cursor + 1)
	case keyBackspace, keyDelete:
		return "", false, e.deleteBeforeCursor()
	case keyTab:
		return "", false, e.completeWord()
	case keyCtrlK:
		return "", false, e.killToEnd()
	case keyCtrlL:
		if err := e.write("\x1b[H\x1b[2J"); err != nil {
			return "", false, err
		}
		return "", false, e.Redraw()
	case keyCtrlU:
		return "", false, e.killToStart()
	case keyCtrlW:
		return "", false, e.killWord()
	case keyEscape:
		e.pending = append(e.pending, input)
		return "", false, nil
	}

	if input >= 0x20 && input < keyDelete {
		return "", false, e.insert(rune(input))
	}
	if input >= 0x80 {
		e.pending = append(e.pending, input)
		return "", false, e.flushRune()
	}
	// Remaining control bytes are ignored.
	return "", false, nil
}

// feedPending extends a partial escape or UTF-8 sequence.
func (e *Editor) feedPending(input byte) (string, bool, error) {
	e.pending = append(e.pending, input)
	if len(e.pending) > maxPending {
		e.pending = nil
		return "", false, e.bell()
	}
	if e.pending[0] == keyEscape {
		if !escapeComplete(e.pending) {
			return "", false, nil
		}
		sequence := e.pending
		e.pending = nil
		return "", false, e.handleEscape(sequence)
	}
	return "", false, e.flushRune()
}

// flushRune decodes the pending bytes once they hold a full UTF-8
// encoding, inserting the rune or dropping an invalid sequence.
func (e *Editor) flushRune() error {
	if !utf8.FullRune(e.pending) {
		if len(e.pending) < utf8.UTFMax {
			return nil
		}
		e.pending = nil
		return e.bell()
	}
	character, size := utf8.DecodeRune(e.pending)
	e.pending = nil
	if character == utf8.RuneError && size <= 1 {
		return e.bell()
	}
	return e.insert(character)
}

// escapeComplete reports whether the buffered bytes form a whole
// escape sequence. CSI sequences (ESC [) end at a byte in 0x40..0x7e;
// SS3 sequences (ESC O) carry exactly one more byte; any other second
// byte is an Alt chord and complete as is.
func escapeComplete(sequence []byte) bool {
	if len(sequence) < 2 {
		return false
	}
	switch sequence[1] {
	case '[':
		final := sequence[len(sequence)-1]
		return len(sequence) >= 3 && final >= 0x40 && final <= 0x7e
	case 'O':
		return len(sequence) >= 3
	default:
		return true
	}
}

// handleEscape dispatches a complete escape sequence. Unrecognized
// sequences and Alt chords are dropped.
func (e *Editor) handleEscape(sequence []byte) error {
	if len(sequence) < 3 {
		return nil
	}
	final := sequence[len(sequence)-1]
	switch final {
	case 'A':
		return e.historyPrevious()
	case 'B':
		return e.historyNext()
	case 'C':
		return e.moveTo(e.cursor + 1)
	case 'D':
		return e.moveTo(e.cursor - 1)
	case 'H':
		return e.moveTo(0)
	case 'F':
		return e.moveTo(len(e.line))
	case '~':
		switch string(sequence[2 : len(sequence)-1]) {
		case "1", "7":
			return e.moveTo(0)
		case "4", "8":
			return e.moveTo(len(e.line))
		case "3":
			return e.deleteAtCursor()
		}
	}
	return nil
}

// accept finishes the line: echoes the row change, records history,
// and resets the editor for the next line.
func (e *Editor) accept() (string, bool, error) {
	line := string(e.line)
	if e.history != nil {
		e.history.Append(line)
	}
	e.line = e.line[:0]
	e.cursor = 0
	e.recall = -1
	e.stash = nil
	e.pending = nil
	return line, true, e.write("\r\n")
}

// cancel discards the line in progress, echoing the conventional ^C
// marker, and shows a fresh prompt.
func (e *Editor) cancel() error {
	e.line = e.line[:0]
	e.cursor = 0
	e.recall = -1
	e.stash = nil
	e.pending = nil
	if err := e.write("^C\r\n"); err != nil {
		return err
	}
	return e.Redraw()
}

// insert places a rune at the cursor.
func (e *Editor) insert(character rune) error {
	if len(e.line) >= e.capacity {
		return e.bell()
	}
	e.editing()
	e.line = append(e.line, 0)
	copy(e.line[e.cursor+1:], e.line[e.cursor:])
	e.line[e.cursor] = character
	e.cursor++
	if e.cursor == len(e.line) {
		return e.write(string(character))
	}
	// Rewrite the shifted tail and step back over it.
	if err := e.write(string(e.line[e.cursor-1:])); err != nil {
		return err
	}
	return e.moveColumns(e.cursor - len(e.line))
}

// deleteBeforeCursor removes the rune left of the cursor.
func (e *Editor) deleteBeforeCursor() error {
	if e.cursor == 0 {
		return nil
	}
	e.editing()
	e.line = append(e.line[:e.cursor-1], e.line[e.cursor:]...)
	e.cursor--
	if e.cursor == len(e.line) {
		return e.write("\b \b")
	}
	if err := e.write("\b" + string(e.line[e.cursor:]) + " "); err != nil {
		return err
	}
	return e.moveColumns(e.cursor - len(e.line) - 1)
}

// deleteAtCursor removes the rune under the cursor.
func (e *Editor) deleteAtCursor() error {
	if e.cursor >= len(e.line) {
		return nil
	}
	e.editing()
	e.line = append(e.line[:e.cursor], e.line[e.cursor+1:]...)
	if err := e.write(string(e.line[e.cursor:]) + " "); err != nil {
		return err
	}
	return e.moveColumns(e.cursor - len(e.line) - 1)
}

// killToEnd removes everything from the cursor to the end of the line.
func (e *Editor) killToEnd() error {
	if e.cursor >= len(e.line) {
		return nil
	}
	e.editing()
	e.line = e.line[:e.cursor]
	return e.write("\x1b[K")
}

// killToStart removes everything before the cursor.
func (e *Editor) killToStart() error {
	if e.cursor == 0 {
		return nil
	}
	e.editing()
	e.line = append(e.line[:0], e.line[e.cursor:]...)
	e.cursor = 0
	return e.Redraw()
}

// killWord removes the word before the cursor along with the spaces
// that follow it.
func (e *Editor) killWord() error {
	if e.cursor == 0 {
		return nil
	}
	e.editing()
	boundary := e.cursor
	for boundary > 0 && e.line[boundary-1] == ' ' {
		boundary--
	}
	for boundary > 0 && e.line[boundary-1] != ' ' {
		boundary--
	}
	e.line = append(e.line[:boundary], e.line[e.cursor:]...)
	e.cursor = boundary
	return e.Redraw()
}

// moveTo places the cursor at the given rune position, clamped to the
// line.
func (e *Editor) moveTo(position int) error {
	if position < 0 {
		position = 0
	}
	if position > len(e.line) {
		position = len(e.line)
	}
	distance := position - e.cursor
	e.cursor = position
	return e.moveColumns(distance)
}

// historyPrevious shows the next older history entry, stashing the
// live line on the first step.
func (e *Editor) historyPrevious() error {
	if e.history == nil || e.history.Len() == 0 {
		return e.bell()
	}
	if e.recall == -1 {
		e.stash = append([]rune(nil), e.line...)
		e.recall = e.history.Len()
	}
	if e.recall == 0 {
		return e.bell()
	}
	e.recall--
	return e.showLine(e.history.Entry(e.recall))
}

// historyNext shows the next newer history entry, restoring the
// stashed live line past the newest.
func (e *Editor) historyNext() error {
	if e.recall == -1 {
		return e.bell()
	}
	e.recall++
	if e.recall >= e.history.Len() {
		e.recall = -1
		line := string(e.stash)
		e.stash = nil
		return e.showLine(line)
	}
	return e.showLine(e.history.Entry(e.recall))
}

// showLine replaces the display line with content, cursor at the end.
func (e *Editor) showLine(content string) error {
	e.line = append(e.line[:0], []rune(content)...)
	e.cursor = len(e.line)
	return e.Redraw()
}

// editing marks the line as live again: edits to a recalled entry
// detach it from history.
func (e *Editor) editing() {
	e.recall = -1
	e.stash = nil
}

// completeWord completes the first word of the line against the
// configured candidates. A single match is filled in with a trailing
// space; several matches extend the shared prefix, and a second Tab
// with nothing to extend lists them.
func (e *Editor) completeWord() error {
	listCandidates := e.lastTab
	e.lastTab = false
	if e.complete == nil || e.cursor != len(e.line) {
		return e.bell()
	}
	prefix := string(e.line)
	if strings.ContainsRune(prefix, ' ') {
		return e.bell()
	}

	var matches []string
	for _, candidate := range e.complete() {
		if strings.HasPrefix(candidate, prefix) {
			matches = append(matches, candidate)
		}
	}
	switch len(matches) {
	case 0:
		return e.bell()
	case 1:
		return e.insertString(matches[0][len(prefix):] + " ")
	}

	shared := sharedPrefix(matches)
	if len(shared) > len(prefix) {
		return e.insertString(shared[len(prefix):])
	}
	if listCandidates {
		if err := e.write("\r\n" + strings.Join(matches, "  ") + "\r\n"); err != nil {
			return err
		}
		return e.Redraw()
	}
	e.lastTab = true
	return e.bell()
}

// insertString appends completion text at the end of the line.
func (e *Editor) insertString(text string) error {
	for _, character := range text {
		if err := e.insert(character); err != nil {
			return err
		}
	}
	return nil
}

// sharedPrefix returns the longest prefix common to all words.
func sharedPrefix(words []string) string {
	prefix := words[0]
	for _, word := range words[1:] {
		for !strings.HasPrefix(word, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

// moveColumns moves the terminal cursor left (negative) or right
// (positive) by the given number of columns.
func (e *Editor) moveColumns(columns int) error {
	switch {
	case columns < 0:
		return e.write(fmt.Sprintf("\x1b[%dD", -columns))
	case columns > 0:
		return e.write(fmt.Sprintf("\x1b[%dC", columns))
	}
	return nil
}

// bell rings the terminal bell.
func (e *Editor) bell() error {
	return e.write("\a")
}

func (e *Editor) write(s string) error {
	_, err := io.WriteString(e.output, s)
	return err
}
