// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package editdist

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"exit", "exti", 2},
		{"hlep", "help", 2},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"foo", "bar", "sub", "help", "exit"}

	tests := []struct {
		unknown string
		want    string
	}{
		{"fo", "foo"},
		{"hlep", "help"},
		{"exti", "exit"},
		{"bra", "bar"},
		{"completely-unrelated", ""},
	}

	for _, tt := range tests {
		if got := Closest(tt.unknown, candidates, 3); got != tt.want {
			t.Errorf("Closest(%q) = %q, want %q", tt.unknown, got, tt.want)
		}
	}
}
