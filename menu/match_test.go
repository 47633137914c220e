// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"errors"
	"slices"
	"testing"
)

// testParameters is the schema exercised throughout: one mandatory and one
// optional positional, a presence flag, and a value flag.
func testParameters() []Parameter {
	return []Parameter{
		Mandatory("a", "This is the help text for 'a'"),
		Optional("b", ""),
		Named("verbose", ""),
		NamedValue("level", "INT", "Set the level of the dangle"),
	}
}

func TestMatchBindsEveryKind(t *testing.T) {
	args, err := Match(testParameters(), []string{"--level=3", "--verbose", "1", "2"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if got, ok := args.Value("a"); !ok || got != "1" {
		t.Errorf("Value(a) = %q, %v, want %q, true", got, ok, "1")
	}
	if got, ok := args.Value("b"); !ok || got != "2" {
		t.Errorf("Value(b) = %q, %v, want %q, true", got, ok, "2")
	}
	if !args.Present("verbose") {
		t.Error("Present(verbose) = false, want true")
	}
	if got, ok := args.Value("level"); !ok || got != "3" {
		t.Errorf("Value(level) = %q, %v, want %q, true", got, ok, "3")
	}
	if unknown := args.Unknown(); len(unknown) != 0 {
		t.Errorf("Unknown() = %q, want none", unknown)
	}
}

func TestMatchOptionalAbsent(t *testing.T) {
	args, err := Match(testParameters(), []string{"1"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if got, ok := args.Value("a"); !ok || got != "1" {
		t.Errorf("Value(a) = %q, %v, want %q, true", got, ok, "1")
	}
	if _, ok := args.Value("b"); ok {
		t.Error("Value(b) supplied = true, want false")
	}
	if args.Present("verbose") {
		t.Error("Present(verbose) = true, want false")
	}
	if _, ok := args.Value("level"); ok {
		t.Error("Value(level) supplied = true, want false")
	}
}

func TestMatchErrors(t *testing.T) {
	tests := []struct {
		name         string
		tokens       []string
		wantCategory ErrorCategory
	}{
		{
			name:         "no tokens at all",
			tokens:       nil,
			wantCategory: CategoryInsufficientArguments,
		},
		{
			name:         "flags alone do not satisfy positionals",
			tokens:       []string{"--verbose", "--level=3"},
			wantCategory: CategoryInsufficientArguments,
		},
		{
			name:         "more positionals than the schema declares",
			tokens:       []string{"1", "2", "3", "4"},
			wantCategory: CategoryTooManyArguments,
		},
		{
			name:         "bare double dash",
			tokens:       []string{"1", "--"},
			wantCategory: CategoryMalformedArgument,
		},
		{
			name:         "value flag without a value",
			tokens:       []string{"1", "--level"},
			wantCategory: CategoryMalformedArgument,
		},
		{
			name:         "presence flag given a value",
			tokens:       []string{"1", "--verbose=yes"},
			wantCategory: CategoryMalformedArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Match(testParameters(), tt.tokens)
			if err == nil {
				t.Fatal("Match() error = nil, want classified error")
			}
			var matchErr *Error
			if !errors.As(err, &matchErr) {
				t.Fatalf("Match() error type = %T, want *Error", err)
			}
			if matchErr.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", matchErr.Category, tt.wantCategory)
			}
		})
	}
}

func TestMatchRecordsUnknownFlags(t *testing.T) {
	args, err := Match(testParameters(), []string{"--frobnicate", "1", "--frobnicate", "--color=red"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	want := []string{"frobnicate", "color"}
	if got := args.Unknown(); !slices.Equal(got, want) {
		t.Errorf("Unknown() = %q, want %q", got, want)
	}
}

func TestMatchDuplicateFlagLastWins(t *testing.T) {
	args, err := Match(testParameters(), []string{"1", "--level=3", "--level=7"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if got, _ := args.Value("level"); got != "7" {
		t.Errorf("Value(level) = %q, want %q", got, "7")
	}
}

func TestMatchEmptyFlagValue(t *testing.T) {
	args, err := Match(testParameters(), []string{"1", "--level="})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	got, ok := args.Value("level")
	if !ok {
		t.Fatal("Value(level) supplied = false, want true")
	}
	if got != "" {
		t.Errorf("Value(level) = %q, want empty string", got)
	}
}

func TestMatchIsCaseSensitive(t *testing.T) {
	args, err := Match(testParameters(), []string{"1", "--Verbose"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if args.Present("verbose") {
		t.Error("Present(verbose) = true, want false for --Verbose")
	}
	if got := args.Unknown(); !slices.Equal(got, []string{"Verbose"}) {
		t.Errorf("Unknown() = %q, want [Verbose]", got)
	}
}

func TestMatchPositionalsInterleaveWithFlags(t *testing.T) {
	args, err := Match(testParameters(), []string{"--verbose", "1", "--level=3", "2"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if got, _ := args.Value("a"); got != "1" {
		t.Errorf("Value(a) = %q, want %q", got, "1")
	}
	if got, _ := args.Value("b"); got != "2" {
		t.Errorf("Value(b) = %q, want %q", got, "2")
	}
}

func TestLookupDistinguishesAbsentFromUndeclared(t *testing.T) {
	args, err := Match(testParameters(), []string{"1"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	binding, err := args.Lookup("b")
	if err != nil {
		t.Fatalf("Lookup(b) error = %v, want nil for declared parameter", err)
	}
	if binding.Supplied {
		t.Error("Lookup(b).Supplied = true, want false")
	}

	_, err = args.Lookup("frobnicate")
	if err == nil {
		t.Fatal("Lookup(frobnicate) error = nil, want unknown-argument error")
	}
	var lookupErr *Error
	if !errors.As(err, &lookupErr) {
		t.Fatalf("Lookup(frobnicate) error type = %T, want *Error", err)
	}
	if lookupErr.Category != CategoryUnknownArgument {
		t.Errorf("category = %q, want %q", lookupErr.Category, CategoryUnknownArgument)
	}
}

func TestBindingsPreserveDeclarationOrder(t *testing.T) {
	args, err := Match(testParameters(), []string{"--level=3", "1"})
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	want := []string{"a", "b", "verbose", "level"}
	bindings := args.Bindings()
	if len(bindings) != len(want) {
		t.Fatalf("len(Bindings()) = %d, want %d", len(bindings), len(want))
	}
	for i, name := range want {
		if bindings[i].Parameter.Name != name {
			t.Errorf("bindings[%d].Parameter.Name = %q, want %q", i, bindings[i].Parameter.Name, name)
		}
	}
}
