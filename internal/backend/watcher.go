package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/mfletcher/duolist/internal/choices"
)

// Event conveys a reloaded choice set or an error from a poll.
type Event struct {
	Set choices.Set
	Err error
}

// Watcher polls the choices file at a fixed interval and publishes a reload
// event whenever the file's mtime or size changes.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	lastMod  time.Time
	lastSize int64
}

// NewWatcher creates a watcher for the given choices file. The current file
// state is the baseline; only subsequent changes emit events.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}
	if info, err := os.Stat(path); err == nil {
		w.lastMod = info.ModTime()
		w.lastSize = info.Size()
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of reload events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current tick; use Wait
// if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			evt, changed := w.check()
			if !changed {
				continue
			}
			select {
			case <-w.ctx.Done():
				return
			case w.events <- evt:
			}
		}
	}
}

func (w *Watcher) check() (Event, bool) {
	info, err := os.Stat(w.path)
	if err != nil {
		// A transient stat failure (editor rename-in-place) is not worth an
		// event; keep the old baseline and retry on the next tick.
		return Event{}, false
	}
	if info.ModTime().Equal(w.lastMod) && info.Size() == w.lastSize {
		return Event{}, false
	}
	w.lastMod = info.ModTime()
	w.lastSize = info.Size()
	set, err := choices.Load(w.path)
	if err != nil {
		return Event{Err: err}, true
	}
	return Event{Set: set}, true
}
