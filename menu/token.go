// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package menu

import "strings"

// Tokenize splits a completed input line into its command word and raw
// argument tokens. Tokens are the byte runs between whitespace: consecutive
// whitespace collapses to a single delimiter and leading or trailing
// whitespace is ignored. There is no quoting or escaping; a token is
// exactly the bytes between whitespace runs. The returned strings share the
// line's backing storage.
//
// An empty or whitespace-only line yields an empty command word and nil
// arguments; callers treat that as a no-op, not an error.
func Tokenize(line string) (command string, arguments []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
