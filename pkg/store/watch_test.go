package store

import (
	"context"
	"testing"
	"time"
)

func TestWatchEmitsOnCreate(t *testing.T) {
	cfg := testConfig(t)
	p, err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before mutating.
	time.Sleep(50 * time.Millisecond)

	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	if err := p.Create(date); err != nil {
		t.Fatalf("create: %v", err)
	}

	select {
	case _, ok := <-ch:
		if !ok {
			t.Fatal("event channel closed before any event")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	cfg := testConfig(t)
	p, err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestThrottleCoalescesBurst(t *testing.T) {
	throttle := newEventThrottle(20 * time.Millisecond)
	defer throttle.Stop()

	got := make(chan Event, 16)
	send := func(ev Event) { got <- ev }

	throttle.Enqueue(Event{Name: "a"}, send)
	throttle.Enqueue(Event{Name: "b"}, send)
	throttle.Enqueue(Event{Name: "c"}, send)

	select {
	case ev := <-got:
		if ev.Name != "" {
			t.Errorf("coalesced event should have no single name, got %q", ev.Name)
		}
	case <-time.After(time.Second):
		t.Fatal("throttle never flushed")
	}

	select {
	case ev := <-got:
		t.Fatalf("burst produced extra event %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
