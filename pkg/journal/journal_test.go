package journal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/entry"
	"tableflip.dev/trace/pkg/store"
)

// memoryStore is an in-memory store.Persistence for tests.
type memoryStore struct {
	mu      sync.Mutex
	value   store.Value
	subs    []chan store.Value
	readErr error
}

func (m *memoryStore) Read(_ context.Context) (store.Value, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return store.Value{}, m.readErr
	}
	return m.value, nil
}

func (m *memoryStore) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = store.Value{Data: append([]byte(nil), data...), Present: true}
	for _, ch := range m.subs {
		ch <- m.value
	}
	return nil
}

func (m *memoryStore) Observe(ctx context.Context) (<-chan store.Value, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan store.Value, 16)
	ch <- m.value
	m.subs = append(m.subs, ch)
	return ch, nil
}

func (m *memoryStore) Watch(_ context.Context) error { return nil }

func newRepo() (*Repository, *memoryStore) {
	ms := &memoryStore{}
	r := New(ms)
	return r, ms
}

func mustDate(t *testing.T, s string) day.Date {
	t.Helper()
	d, err := day.Parse(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func TestSaveForCreates(t *testing.T) {
	r, _ := newRepo()
	ctx := context.Background()
	d := mustDate(t, "2026-08-31")

	if err := r.SaveFor(ctx, d, "hello"); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Date != d || e.Text != "hello" || e.Highlighted {
		t.Fatalf("unexpected entry %+v", e)
	}
	if !e.Created.Equal(e.Updated) {
		t.Fatalf("created must equal updated on first save")
	}
}

func TestSaveForReplacesPreservingCreatedAndHighlight(t *testing.T) {
	r, _ := newRepo()
	ctx := context.Background()
	d := mustDate(t, "2026-08-31")

	base := time.Now().Add(-time.Hour)
	r.clock = func() time.Time { return base }
	if err := r.SaveFor(ctx, d, "hello"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := r.ToggleHighlight(ctx, d, true); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	r.clock = func() time.Time { return base.Add(time.Hour) }
	if err := r.SaveFor(ctx, d, "world"); err != nil {
		t.Fatalf("second save: %v", err)
	}

	entries, _ := r.List(ctx)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Text != "world" {
		t.Fatalf("text not replaced: %q", e.Text)
	}
	if !e.Created.Equal(base) {
		t.Fatalf("created must be preserved")
	}
	if !e.Updated.After(e.Created) {
		t.Fatalf("updated must advance")
	}
	if !e.Highlighted {
		t.Fatalf("highlight must survive a text save")
	}
}

func TestSaveForTrims(t *testing.T) {
	r, _ := newRepo()
	ctx := context.Background()
	d := mustDate(t, "2026-01-02")
	if err := r.SaveFor(ctx, d, "  padded \n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	e, ok, err := r.EntryFor(ctx, d)
	if err != nil || !ok {
		t.Fatalf("lookup: ok=%v err=%v", ok, err)
	}
	if e.Text != "padded" {
		t.Fatalf("expected trimmed text, got %q", e.Text)
	}
}

func TestUniquenessInvariant(t *testing.T) {
	r, _ := newRepo()
	ctx := context.Background()
	dates := []string{"2026-08-29", "2026-08-30", "2026-08-30", "2026-08-31"}
	for i, s := range dates {
		if err := r.SaveFor(ctx, mustDate(t, s), "v"+string(rune('0'+i))); err != nil {
			t.Fatalf("save %s: %v", s, err)
		}
	}
	if err := r.Delete(ctx, mustDate(t, "2026-08-29")); err != nil {
		t.Fatalf("delete: %v", err)
	}
	entries, _ := r.List(ctx)
	seen := make(map[day.Date]bool)
	for _, e := range entries {
		if seen[e.Date] {
			t.Fatalf("duplicate date %s", e.Date)
		}
		seen[e.Date] = true
	}
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
}

func TestToggleHighlightNoEntryIsNoop(t *testing.T) {
	r, ms := newRepo()
	ctx := context.Background()
	if err := r.ToggleHighlight(ctx, mustDate(t, "2026-08-31"), true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if ms.value.Present {
		t.Fatalf("no-op toggle must not write")
	}
}

func TestDeleteIdempotent(t *testing.T) {
	r, _ := newRepo()
	ctx := context.Background()
	d := mustDate(t, "2026-08-31")
	if err := r.Delete(ctx, d); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
	if err := r.SaveFor(ctx, d, "x"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := r.Delete(ctx, d); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := r.Delete(ctx, d); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	entries, _ := r.List(ctx)
	if len(entries) != 0 {
		t.Fatalf("expected empty collection, got %d", len(entries))
	}
}

func TestListSortedDescending(t *testing.T) {
	r, _ := newRepo()
	ctx := context.Background()
	for _, s := range []string{"2024-01-01", "2024-03-15", "2024-02-10"} {
		if err := r.SaveFor(ctx, mustDate(t, s), "t"); err != nil {
			t.Fatalf("save %s: %v", s, err)
		}
	}
	entries, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"2024-03-15", "2024-02-10", "2024-01-01"}
	for i, s := range want {
		if entries[i].Date.String() != s {
			t.Fatalf("position %d: expected %s, got %s", i, s, entries[i].Date)
		}
	}
}

func TestConsecutiveDaysUpTo(t *testing.T) {
	r, _ := newRepo()
	ctx := context.Background()
	d := mustDate(t, "2026-08-31")
	for _, back := range []int{0, 1, 2} { // D, D-1, D-2; gap at D-3
		if err := r.SaveFor(ctx, d.Add(-back), "t"); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	if n, err := r.ConsecutiveDaysUpTo(ctx, d); err != nil || n != 3 {
		t.Fatalf("expected streak 3, got %d (%v)", n, err)
	}
	if n, _ := r.ConsecutiveDaysUpTo(ctx, d.Add(-3)); n != 0 {
		t.Fatalf("expected streak 0 at the gap, got %d", n)
	}

	empty, _ := newRepo()
	if n, _ := empty.ConsecutiveDaysUpTo(ctx, d); n != 0 {
		t.Fatalf("expected streak 0 with no entries, got %d", n)
	}
}

func TestCorruptBlobPropagates(t *testing.T) {
	r, ms := newRepo()
	ctx := context.Background()
	ms.value = store.Value{Data: []byte("{broken"), Present: true}

	if _, err := r.List(ctx); !errors.Is(err, entry.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt from List, got %v", err)
	}
	if err := r.SaveFor(ctx, mustDate(t, "2026-08-31"), "x"); !errors.Is(err, entry.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt from SaveFor, got %v", err)
	}
}

func TestStoreFailurePropagates(t *testing.T) {
	r, ms := newRepo()
	ms.readErr = store.ErrUnavailable
	if _, err := r.List(context.Background()); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestObserveAllReplayAndUpdates(t *testing.T) {
	r, _ := newRepo()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := r.ObserveAll(ctx)
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	select {
	case snap := <-ch:
		if len(snap) != 0 {
			t.Fatalf("expected empty initial snapshot, got %d", len(snap))
		}
	case <-time.After(time.Second):
		t.Fatalf("no initial snapshot")
	}

	if err := r.SaveFor(ctx, mustDate(t, "2026-08-31"), "hello"); err != nil {
		t.Fatalf("save: %v", err)
	}
	select {
	case snap := <-ch:
		if len(snap) != 1 || snap[0].Text != "hello" {
			t.Fatalf("unexpected snapshot %+v", snap)
		}
	case <-time.After(time.Second):
		t.Fatalf("no snapshot after write")
	}
}

func TestObserveAllDegradesOnCorruptData(t *testing.T) {
	r, ms := newRepo()
	ms.value = store.Value{Data: []byte("{broken"), Present: true}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := r.ObserveAll(ctx)
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	select {
	case snap := <-ch:
		if len(snap) != 0 {
			t.Fatalf("corrupt data must degrade to an empty snapshot")
		}
	case <-time.After(time.Second):
		t.Fatalf("observation must not stall on corrupt data")
	}
}

func TestGroupByMonth(t *testing.T) {
	r, _ := newRepo()
	ctx := context.Background()
	for _, s := range []string{"2024-01-01", "2024-03-15", "2024-03-02", "2024-02-10"} {
		if err := r.SaveFor(ctx, mustDate(t, s), "t"); err != nil {
			t.Fatalf("save %s: %v", s, err)
		}
	}
	groups, err := r.Months(ctx)
	if err != nil {
		t.Fatalf("months: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("expected three month groups, got %d", len(groups))
	}
	if groups[0].Title() != "March 2024" || len(groups[0].Entries) != 2 {
		t.Fatalf("unexpected first group %s (%d entries)", groups[0].Title(), len(groups[0].Entries))
	}
	if groups[2].Title() != "January 2024" {
		t.Fatalf("unexpected last group %s", groups[2].Title())
	}
}
