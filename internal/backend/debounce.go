package backend

import (
	"sync"
	"time"
)

const defaultDebounce = 250 * time.Millisecond

// debouncer coalesces rapid triggers into a single callback invocation. When
// trigger is called repeatedly within the window only the last callback runs,
// after the window elapses.
type debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func newDebouncer(window time.Duration) *debouncer {
	if window <= 0 {
		window = defaultDebounce
	}
	return &debouncer{window: window}
}

func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// Run only the most recently scheduled callback. Stop can return
		// false when the timer already fired, so the sequence check is what
		// actually prevents a stale callback from racing a newer one.
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if stale {
			return
		}
		callback()
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
