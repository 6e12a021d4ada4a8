package backend

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/tile-grid-control/internal/tile"
)

// Event conveys a reloaded manifest or an error from the watcher.
type Event struct {
	Manifest *tile.Manifest
	Err      error
}

// Watcher observes a manifest file and publishes reload events. Filesystem
// notifications are debounced so an editor's write-then-rename save produces
// a single reload.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	debounce *debouncer

	events chan Event
	kick   chan struct{}
	done   chan struct{}
	stop   sync.Once
	wg     sync.WaitGroup
}

// NewWatcher starts watching the manifest at path. The containing directory
// is watched rather than the file itself: editors replace files on save,
// which swaps the inode out from under a file-level watch.
func NewWatcher(path string, window time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w := &Watcher{
		path:     path,
		fs:       fs,
		debounce: newDebouncer(window),
		events:   make(chan Event, 4),
		kick:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w, nil
}

// Events returns the channel of reload events. It is closed after Stop once
// the watcher loop has drained.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop shuts the watcher down. Use Wait when a clean drain is required.
func (w *Watcher) Stop() {
	w.stop.Do(func() {
		close(w.done)
	})
}

// Wait blocks until the watcher loop has exited and the events channel is
// closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	defer w.fs.Close()
	defer w.debounce.cancel()

	for {
		select {
		case <-w.done:
			return
		case <-w.kick:
			manifest, err := tile.LoadManifest(w.path)
			select {
			case <-w.done:
				return
			case w.events <- Event{Manifest: manifest, Err: err}:
			}
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.matches(evt.Name) {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounce.trigger(w.requestReload)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case <-w.done:
				return
			case w.events <- Event{Err: err}:
			}
		}
	}
}

// requestReload runs on the debounce timer goroutine; the non-blocking send
// keeps the actual load and emit on the loop goroutine.
func (w *Watcher) requestReload() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

func (w *Watcher) matches(name string) bool {
	return filepath.Clean(name) == filepath.Clean(w.path)
}
