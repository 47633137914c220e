// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package editdist provides edit-distance matching for "did you mean"
// suggestions on unrecognized command words and flags.
package editdist

// Distance computes the Levenshtein edit distance between two strings:
// the minimum number of single-character insertions, deletions, or
// substitutions required to change one into the other.
func Distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Use a single row of the distance matrix, updated in place.
	// This is O(min(m,n)) space instead of O(m*n).
	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current := make([]int, len(a)+1)
		current[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := previous[i] + 1
			insertion := current[i-1] + 1
			substitution := previous[i-1] + cost

			current[i] = min(deletion, min(insertion, substitution))
		}

		previous = current
	}

	return previous[len(a)]
}

// Closest returns the candidate nearest to unknown, or "" when none is
// within maxDistance edits. A threshold of 3 catches common typos
// (transpositions, dropped characters, extra characters) without
// suggesting words the user plainly did not mean.
func Closest(unknown string, candidates []string, maxDistance int) string {
	bestName := ""
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		distance := Distance(unknown, candidate)
		if distance < bestDistance {
			bestDistance = distance
			bestName = candidate
		}
	}

	return bestName
}
