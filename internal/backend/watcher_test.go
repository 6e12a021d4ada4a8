package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeManifest(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

func awaitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed before an event arrived")
		}
		return evt
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
		return Event{}
	}
}

func TestWatcherEmitsReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.yaml")
	writeManifest(t, path, "tiles:\n  - title: Builds\n")

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	writeManifest(t, path, "tiles:\n  - title: Builds\n  - title: Deploys\n")

	evt := awaitEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("unexpected event error: %v", evt.Err)
	}
	if len(evt.Manifest.Tiles) != 2 {
		t.Fatalf("expected 2 tiles after reload, got %d", len(evt.Manifest.Tiles))
	}
}

func TestWatcherEmitsErrorForBrokenManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.yaml")
	writeManifest(t, path, "tiles:\n  - title: Builds\n")

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	writeManifest(t, path, "tiles: [")

	evt := awaitEvent(t, w)
	if evt.Err == nil {
		t.Fatalf("expected a parse error event")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.yaml")
	writeManifest(t, path, "tiles:\n  - title: Builds\n")

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Stop()
	w.Wait()

	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatalf("expected closed events channel after stop")
		}
	case <-time.After(time.Second):
		t.Fatalf("events channel not closed after stop")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.yaml")
	writeManifest(t, path, "tiles:\n  - title: Builds\n")

	w, err := NewWatcher(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	writeManifest(t, filepath.Join(dir, "notes.txt"), "unrelated")

	select {
	case evt := <-w.Events():
		t.Fatalf("expected no event for sibling file, got %+v", evt)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "absent", "tiles.yaml"), 0); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
