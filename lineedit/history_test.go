// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lineedit

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestHistoryAppend(t *testing.T) {
	history := NewHistory(8)
	history.Append("one")
	history.Append("two")
	if got, want := history.Len(), 2; got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}
	if got, want := history.Entry(0), "one"; got != want {
		t.Errorf("Entry(0) = %q, want %q", got, want)
	}
	if got, want := history.Entry(1), "two"; got != want {
		t.Errorf("Entry(1) = %q, want %q", got, want)
	}
}

func TestHistorySkipsBlankAndDuplicateLines(t *testing.T) {
	history := NewHistory(8)
	history.Append("")
	history.Append("   ")
	history.Append("cmd")
	history.Append("cmd")
	history.Append("  cmd  ")
	if got, want := history.Len(), 1; got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}
	// A repeat is recorded again once another line intervenes.
	history.Append("other")
	history.Append("cmd")
	if got, want := history.Len(), 3; got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}
}

func TestHistoryRingDropsOldest(t *testing.T) {
	history := NewHistory(3)
	for _, line := range []string{"a", "b", "c", "d"} {
		history.Append(line)
	}
	if got, want := history.Len(), 3; got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}
	want := []string{"b", "c", "d"}
	for i, entry := range want {
		if got := history.Entry(i); got != entry {
			t.Errorf("Entry(%d) = %q, want %q", i, got, entry)
		}
	}
}

func TestHistoryEntryOutOfRange(t *testing.T) {
	history := NewHistory(3)
	history.Append("only")
	if got := history.Entry(-1); got != "" {
		t.Errorf("Entry(-1) = %q, want empty", got)
	}
	if got := history.Entry(1); got != "" {
		t.Errorf("Entry(1) = %q, want empty", got)
	}
}

func TestHistoryDefaultCapacity(t *testing.T) {
	history := NewHistory(0)
	for i := 0; i < DefaultHistoryCapacity+10; i++ {
		history.Append(fmt.Sprintf("line %d", i))
	}
	if got, want := history.Len(), DefaultHistoryCapacity; got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}
	if got, want := history.Entry(0), "line 10"; got != want {
		t.Errorf("Entry(0) = %q, want %q", got, want)
	}
}

func TestHistorySaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	saved := NewHistory(8)
	saved.Append("first")
	saved.Append("second")
	if err := saved.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := NewHistory(8)
	loaded.Append("stale")
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := loaded.Len(), 2; got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}
	if got, want := loaded.Entry(0), "first"; got != want {
		t.Errorf("Entry(0) = %q, want %q", got, want)
	}
	if got, want := loaded.Entry(1), "second"; got != want {
		t.Errorf("Entry(1) = %q, want %q", got, want)
	}
}

func TestHistoryLoadMissingFile(t *testing.T) {
	history := NewHistory(8)
	err := history.Load(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("Load on a missing file: %v", err)
	}
	if got, want := history.Len(), 0; got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}
}

func TestHistoryLoadKeepsNewestLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	content := "one\ntwo\nthree\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	history := NewHistory(2)
	if err := history.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := history.Len(), 2; got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}
	if got, want := history.Entry(0), "two"; got != want {
		t.Errorf("Entry(0) = %q, want %q", got, want)
	}
	if got, want := history.Entry(1), "three"; got != want {
		t.Errorf("Entry(1) = %q, want %q", got, want)
	}
}
