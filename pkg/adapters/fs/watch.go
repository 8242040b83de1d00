package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/foliokit/folio/pkg/core"
)

// debounceWindow coalesces editor write bursts (write + chmod + rename
// dances) into a single event per slug.
const debounceWindow = 50 * time.Millisecond

// Watch observes the content directory and emits one core.Event per
// effective content change until ctx is done. The returned channel is
// closed when the watcher shuts down.
//
// Events for files not matching the content pattern are ignored.
func (s *Source) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	events := make(chan core.Event, 16)
	go s.watchLoop(ctx, watcher, events)

	return events, nil
}

func (s *Source) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- core.Event) {
	deb := newDebouncer(debounceWindow)
	defer func() {
		deb.stopAndWait()
		_ = watcher.Close()
		close(events)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			name := filepath.Base(event.Name)
			if !s.matches(name) {
				continue
			}

			eType := mapEventType(event)
			if eType == "" {
				continue
			}

			slug := name[:len(name)-len(filepath.Ext(name))]
			s.logger.Debug("content change observed", "slug", slug, "op", event.Op.String())

			out := core.Event{
				Type:      eType,
				Slug:      slug,
				Timestamp: time.Now().Unix(),
			}
			deb.add(slug, func() {
				select {
				case events <- out:
				case <-ctx.Done():
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

// debouncer delays a callback per key, resetting the delay whenever the
// same key fires again within the window.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	stopped bool
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(key string, fire func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	// Stop returning false means the old timer already fired; its own
	// callback settles its waitgroup slot.
	if t, ok := d.timers[key]; ok && t.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		delete(d.timers, key)
		d.mu.Unlock()

		fire()
	})
}

// stopAndWait stops accepting new events and waits for in-flight timers.
func (d *debouncer) stopAndWait() {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
