// Package store persists the whole journal as a single durable slot and
// broadcasts every new value to subscribers.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// ErrUnavailable marks a persistence medium that cannot currently be read
// or written. It is never retried here; callers decide what to do.
var ErrUnavailable = errors.New("store: unavailable")

// slotKey names the one logical slot this system uses. The store is not a
// general key/value namespace.
const slotKey = "entries"

// Value is one observation of the journal slot. Present distinguishes an
// empty blob from a slot that was never written.
type Value struct {
	Data    []byte
	Present bool
}

// Persistence defines the persistence contract for the journal blob.
type Persistence interface {
	// Read returns the current slot value. A missing slot is not an error.
	Read(ctx context.Context) (Value, error)

	// Write atomically replaces the slot and notifies all subscribers.
	Write(ctx context.Context, data []byte) error

	// Observe emits the current value immediately on subscription and again
	// after every successful write. The channel closes when ctx ends. Slow
	// consumers coalesce to the latest value; writes never block on them.
	Observe(ctx context.Context) (<-chan Value, error)

	// Watch re-broadcasts slot changes made by other processes until ctx is
	// cancelled. Optional; in-process writes notify subscribers regardless.
	Watch(ctx context.Context) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return New(basePath), nil
}

// New creates a Persistence rooted at basePath.
func New(basePath string) Persistence {
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			// TempDir makes diskv write-new-then-rename, so a concurrent
			// reader never observes a partially written slot.
			TempDir:      filepath.Join(basePath, ".tmp"),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		subs:     make(map[int]chan Value),
	}
}

type persistence struct {
	d        *diskv.Diskv
	basePath string

	mu   sync.Mutex
	subs map[int]chan Value
	next int
}

func (p *persistence) Read(_ context.Context) (Value, error) {
	return p.read()
}

func (p *persistence) read() (Value, error) {
	if !p.d.Has(slotKey) {
		return Value{}, nil
	}
	data, err := p.d.Read(slotKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Value{}, nil
		}
		return Value{}, fmt.Errorf("%w: read slot: %v", ErrUnavailable, err)
	}
	return Value{Data: data, Present: true}, nil
}

func (p *persistence) Write(_ context.Context, data []byte) error {
	if err := p.d.Write(slotKey, data); err != nil {
		return fmt.Errorf("%w: write slot: %v", ErrUnavailable, err)
	}
	p.broadcast(Value{Data: data, Present: true})
	return nil
}

func (p *persistence) Observe(ctx context.Context) (<-chan Value, error) {
	current, err := p.read()
	if err != nil {
		return nil, err
	}

	ch := make(chan Value, 1)
	ch <- current

	p.mu.Lock()
	id := p.next
	p.next++
	p.subs[id] = ch
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		delete(p.subs, id)
		// Closed under the lock so broadcast can never send on a closed
		// channel.
		close(ch)
		p.mu.Unlock()
	}()

	return ch, nil
}

// broadcast pushes v to every subscriber, replacing any undelivered value so
// laggards always see the newest snapshot.
func (p *persistence) broadcast(v Value) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ch := range p.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}
