package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when the data directory changes.
// Name is the path that changed, or empty when a burst was coalesced into a
// single notification.
type Event struct {
	Name string
}

// Watch streams change events until ctx is cancelled. Create, write, remove
// and rename events all qualify; chmod-only events do not. Callers should
// drain the returned channel; when they fall behind, events are dropped
// rather than blocking the watcher, since the consumer's response is a full
// refresh either way. The channel is closed once ctx is done or the watcher
// fails unrecoverably.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.cfg.DataDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.cfg.DataDir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer watcher.Close()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a plain change hint; the
				// consumer's refresh resynchronizes regardless of cause.
				throttle.Enqueue(Event{}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op == fsnotify.Chmod {
					continue
				}
				throttle.Enqueue(Event{Name: evt.Name}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so consumers refresh
// once per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	pending *Event
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending == nil {
		t.pending = &ev
	} else if t.pending.Name != ev.Name {
		// Multiple files changed in one burst: report a coalesced event.
		t.pending = &Event{}
	}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = nil
	t.timer = nil
	t.mu.Unlock()

	if pending != nil {
		send(*pending)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
