package shapes

import (
	"testing"
	"time"
)

func newTestWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func waitForEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case path, ok := <-w.Events:
		if !ok {
			t.Fatal("Events closed before delivering an event")
		}
		return path
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a watch event")
	}
	return ""
}

func expectQuiet(t *testing.T, w *Watcher, d time.Duration) {
	t.Helper()
	select {
	case path, ok := <-w.Events:
		if ok {
			t.Fatalf("unexpected event %s", path)
		}
	case <-time.After(d):
	}
}

func TestWatcherDeliversShapeWritesOnly(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	// The non-yaml write lands first and must never surface.
	writeShape(t, dir, "notes.txt", "not a shape")
	path := writeShape(t, dir, "square.yaml", "name: square\npoints:\n  - {x: 0, y: 0}\n")

	if got := waitForEvent(t, w); got != path {
		t.Fatalf("event for %s, want %s", got, path)
	}
	expectQuiet(t, w, 150*time.Millisecond)
}

func TestWatcherDebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	// Two back-to-back writes of the same file land inside the debounce
	// window and collapse into a single event.
	path := writeShape(t, dir, "square.yaml", "name: square\n")
	writeShape(t, dir, "square.yaml", "name: square\npoints: []\n")

	if got := waitForEvent(t, w); got != path {
		t.Fatalf("event for %s, want %s", got, path)
	}
	expectQuiet(t, w, 150*time.Millisecond)
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	// The run goroutine closes both channels on its way out.
	if _, ok := <-w.Events; ok {
		t.Fatal("Events open after Close")
	}
	if _, ok := <-w.Errors; ok {
		t.Fatal("Errors open after Close")
	}
}
