package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch re-reads the slot and notifies subscribers whenever another process
// rewrites it. It returns after the watcher is installed; the watch loop
// runs until ctx is cancelled. In-process writes already notify subscribers,
// so Watch only matters for long-lived views that should track external
// writers too.
func (p *persistence) Watch(ctx context.Context) error {
	if p.basePath == "" {
		return fmt.Errorf("%w: base path unknown", ErrUnavailable)
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("%w: ensure base path: %v", ErrUnavailable, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: create watcher: %v", ErrUnavailable, err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("%w: watch %s: %v", ErrUnavailable, p.basePath, err)
	}

	slotPath := filepath.Join(p.basePath, slotKey)

	go func() {
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		// Coalesce filesystem storms so subscribers see one snapshot per
		// burst instead of one per write syscall.
		throttle := newRefreshThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		refresh := func() {
			v, err := p.read()
			if err != nil {
				fmt.Fprintf(os.Stderr, "store: watch refresh: %v\n", err)
				return
			}
			p.broadcast(v)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch: %v\n", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != slotPath {
					continue
				}
				throttle.Enqueue(refresh)
			}
		}
	}()

	return nil
}

// refreshThrottle runs fn once per quiet period, however many times it was
// enqueued in between.
type refreshThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newRefreshThrottle(delay time.Duration) *refreshThrottle {
	return &refreshThrottle{delay: delay}
}

func (t *refreshThrottle) Enqueue(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		t.timer = nil
		t.mu.Unlock()
		fn()
	})
}

func (t *refreshThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
