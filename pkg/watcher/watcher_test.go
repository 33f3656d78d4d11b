package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	var calls atomic.Int32

	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
	}

	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 coalesced call, got %d", got)
	}
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("expected no calls after Stop, got %d", got)
	}
}

func TestWatcherSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	beads := filepath.Join(dir, ".beads")
	if err := os.MkdirAll(beads, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	w, err := New(dir, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(beads, "issues.jsonl"), []byte(`{"id":"bd-1"}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-w.Changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change signal after writing the store")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nothing-here"), 0); err == nil {
		t.Fatal("expected error when .beads is missing")
	}
}
