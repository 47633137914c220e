// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package menu

import "fmt"

// ErrorCategory classifies interpreter errors so sessions and embedding
// applications can react programmatically (report, log, count) without
// parsing error message text.
type ErrorCategory string

const (
	// CategoryUnrecognizedCommand indicates the command word matched no
	// item in the current menu. Navigation state is unchanged.
	CategoryUnrecognizedCommand ErrorCategory = "unrecognized_command"

	// CategoryInsufficientArguments indicates fewer positional tokens
	// were supplied than the schema's mandatory parameters require.
	CategoryInsufficientArguments ErrorCategory = "insufficient_arguments"

	// CategoryTooManyArguments indicates more positional tokens were
	// supplied than the schema declares positional parameters.
	CategoryTooManyArguments ErrorCategory = "too_many_arguments"

	// CategoryMalformedArgument indicates a named token whose structure
	// is invalid: a bare --, a value on a presence-only flag, or a
	// value-carrying flag missing its =value part.
	CategoryMalformedArgument ErrorCategory = "malformed_argument"

	// CategoryUnknownArgument indicates a name that no parameter in the
	// schema declares, either supplied as a --flag or queried through
	// [Args.Lookup].
	CategoryUnknownArgument ErrorCategory = "unknown_argument"

	// CategoryLineOverflow indicates accumulated input exceeded the
	// session's fixed line capacity. The whole line is discarded.
	CategoryLineOverflow ErrorCategory = "line_overflow"

	// CategoryDepthExceeded indicates a submenu entry would grow the menu
	// stack past its fixed maximum depth. The stack is unchanged.
	CategoryDepthExceeded ErrorCategory = "depth_exceeded"

	// CategoryInvalidInput indicates a completed line was not valid
	// UTF-8. The line is discarded.
	CategoryInvalidInput ErrorCategory = "invalid_input"
)

// Error is a categorized interpreter error. Every category is recoverable:
// the session reports the error through its output and returns to the
// prompt, and navigation state changes only after a fully successful match.
//
// Error wraps an inner error, preserving the chain for errors.Is and
// errors.As while adding the category for programmatic handling. Use the
// category-specific constructors (UnrecognizedCommand, TooManyArguments,
// and so on) rather than constructing Error directly.
type Error struct {
	// Category classifies the error.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The category is not part of
// the text; it travels separately for callers that branch on it.
func (e *Error) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and errors.As to
// walk the full chain through the Error wrapper.
func (e *Error) Unwrap() error { return e.Err }

// UnrecognizedCommand creates an unrecognized-command error.
func UnrecognizedCommand(format string, args ...any) *Error {
	return &Error{Category: CategoryUnrecognizedCommand, Err: fmt.Errorf(format, args...)}
}

// InsufficientArguments creates an insufficient-arguments error.
func InsufficientArguments(format string, args ...any) *Error {
	return &Error{Category: CategoryInsufficientArguments, Err: fmt.Errorf(format, args...)}
}

// TooManyArguments creates a too-many-arguments error.
func TooManyArguments(format string, args ...any) *Error {
	return &Error{Category: CategoryTooManyArguments, Err: fmt.Errorf(format, args...)}
}

// MalformedArgument creates a malformed-argument error.
func MalformedArgument(format string, args ...any) *Error {
	return &Error{Category: CategoryMalformedArgument, Err: fmt.Errorf(format, args...)}
}

// UnknownArgument creates an unknown-argument error.
func UnknownArgument(format string, args ...any) *Error {
	return &Error{Category: CategoryUnknownArgument, Err: fmt.Errorf(format, args...)}
}

// LineOverflow creates a line-overflow error.
func LineOverflow(format string, args ...any) *Error {
	return &Error{Category: CategoryLineOverflow, Err: fmt.Errorf(format, args...)}
}

// DepthExceeded creates a navigation-depth-exceeded error.
func DepthExceeded(format string, args ...any) *Error {
	return &Error{Category: CategoryDepthExceeded, Err: fmt.Errorf(format, args...)}
}

// InvalidInput creates an invalid-input error.
func InvalidInput(format string, args ...any) *Error {
	return &Error{Category: CategoryInvalidInput, Err: fmt.Errorf(format, args...)}
}
