package fs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/foliokit/folio/pkg/core"
)

func waitForEvent(t *testing.T, events <-chan core.Event, slug string) core.Event {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case e, ok := <-events:
			if !ok {
				t.Fatal("event channel closed before expected event")
			}
			if e.Slug == slug {
				return e
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event for %q", slug)
		}
	}
}

func TestSource_Watch(t *testing.T) {
	dir := t.TempDir()
	src := NewSource(Config{Dir: dir, Logger: slog.New(&captureHandler{})})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := src.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	t.Run("Create Emits Event", func(t *testing.T) {
		writeContent(t, dir, "fresh.mdx", validPost)
		e := waitForEvent(t, events, "fresh")
		if e.Type != core.EventCreate && e.Type != core.EventModify {
			t.Errorf("unexpected event type %q", e.Type)
		}
	})

	t.Run("Non-Content Files Ignored", func(t *testing.T) {
		writeContent(t, dir, "scratch.txt", "noise")
		writeContent(t, dir, "next.mdx", validPost)
		// The txt write must not surface; the next matching event should
		// belong to the mdx file.
		e := waitForEvent(t, events, "next")
		if e.Slug != "next" {
			t.Errorf("slug = %q, want %q", e.Slug, "next")
		}
	})

	t.Run("Delete Emits Event", func(t *testing.T) {
		if err := os.Remove(filepath.Join(dir, "fresh.mdx")); err != nil {
			t.Fatal(err)
		}
		e := waitForEvent(t, events, "fresh")
		if e.Type != core.EventDelete {
			t.Errorf("event type = %q, want %q", e.Type, core.EventDelete)
		}
	})

	t.Run("Cancel Closes Channel", func(t *testing.T) {
		cancel()
		deadline := time.After(3 * time.Second)
		for {
			select {
			case _, ok := <-events:
				if !ok {
					return
				}
			case <-deadline:
				t.Fatal("channel not closed after cancel")
			}
		}
	})
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	deb := newDebouncer(30 * time.Millisecond)
	fired := make(chan struct{}, 10)

	for i := 0; i < 5; i++ {
		deb.add("same-key", func() { fired <- struct{}{} })
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("debounced callback never fired")
	}

	select {
	case <-fired:
		t.Fatal("burst fired more than once")
	case <-time.After(100 * time.Millisecond):
	}

	deb.stopAndWait()
}
