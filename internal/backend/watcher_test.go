package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeChoices(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write choices: %v", err)
	}
}

func TestWatcherEmitsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "choices.txt")
	writeChoices(t, path, "Apple\n")

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	// Rewrite with different content and size; mtime granularity alone can be
	// too coarse for a fast test.
	writeChoices(t, path, "Apple\nBanana\n")

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected event error: %v", evt.Err)
		}
		if len(evt.Set.Available) != 2 {
			t.Fatalf("expected reloaded set with 2 items, got %#v", evt.Set.Available)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for reload event")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "choices.txt")
	writeChoices(t, path, "Apple\n")

	w := NewWatcher(path, 10*time.Millisecond)
	w.Stop()
	w.Wait()

	if _, ok := <-w.Events(); ok {
		t.Fatal("expected events channel closed after Stop/Wait")
	}
}

func TestWatcherIgnoresMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "choices.txt")

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	select {
	case evt := <-w.Events():
		t.Fatalf("expected no event for a missing file, got %#v", evt)
	case <-time.After(100 * time.Millisecond):
	}

	// Creating the file counts as a change against the empty baseline.
	writeChoices(t, path, "Apple\n")
	select {
	case evt := <-w.Events():
		if evt.Err != nil || len(evt.Set.Available) != 1 {
			t.Fatalf("unexpected event %#v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for creation event")
	}
}
