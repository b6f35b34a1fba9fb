// Package journal is the source of truth for entries: it reads, mutates,
// and re-writes the durable collection, enforces one entry per date, and
// derives the views everything else consumes.
package journal

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/entry"
	"tableflip.dev/trace/pkg/store"
)

// ErrEmptyText rejects saves whose text is blank after trimming. Validation
// happens upstream of SaveFor; the repository persists whatever it is given.
var ErrEmptyText = errors.New("journal: empty entry text")

// Repository exposes observation, query, and mutation over the journal.
// Construct one per process with an explicit store handle.
type Repository struct {
	Persistence store.Persistence
	Log         *slog.Logger

	// mu serializes every read-modify-write cycle so back-to-back mutations
	// in one process cannot clobber each other. Writers in other processes
	// remain unsynchronized.
	mu sync.Mutex

	clock func() time.Time
}

// New builds a Repository over p.
func New(p store.Persistence) *Repository {
	return &Repository{Persistence: p}
}

func (r *Repository) now() time.Time {
	if r.clock != nil {
		return r.clock()
	}
	return time.Now()
}

func (r *Repository) logger() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}

// snapshot reads and decodes the current collection, unsorted.
func (r *Repository) snapshot(ctx context.Context) ([]entry.Entry, error) {
	if r.Persistence == nil {
		return nil, errors.New("journal: no persistence configured")
	}
	v, err := r.Persistence.Read(ctx)
	if err != nil {
		return nil, err
	}
	if !v.Present {
		return []entry.Entry{}, nil
	}
	return entry.UnmarshalList(v.Data)
}

func (r *Repository) write(ctx context.Context, entries []entry.Entry) error {
	data, err := entry.MarshalList(entries)
	if err != nil {
		return err
	}
	return r.Persistence.Write(ctx, data)
}

// List returns the current collection sorted by date descending.
func (r *Repository) List(ctx context.Context) ([]entry.Entry, error) {
	entries, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	sortEntries(entries)
	return entries, nil
}

// ObserveAll streams the collection, sorted by date descending, replaying
// the current snapshot immediately and again after every write. It never
// errors after subscription: store or decode faults degrade to an empty
// snapshot and a logged fault so observers keep functioning.
func (r *Repository) ObserveAll(ctx context.Context) (<-chan []entry.Entry, error) {
	if r.Persistence == nil {
		return nil, errors.New("journal: no persistence configured")
	}
	values, err := r.Persistence.Observe(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan []entry.Entry, 1)
	go func() {
		defer close(out)
		for v := range values {
			var entries []entry.Entry
			if v.Present {
				decoded, err := entry.UnmarshalList(v.Data)
				if err != nil {
					r.logger().Error("journal: decode snapshot", "err", err)
					decoded = []entry.Entry{}
				}
				entries = decoded
			} else {
				entries = []entry.Entry{}
			}
			sortEntries(entries)

			// Replace any undelivered snapshot; observers only ever need
			// the newest one.
			select {
			case out <- entries:
			default:
				select {
				case <-out:
				default:
				}
				select {
				case out <- entries:
				default:
				}
			}
		}
	}()
	return out, nil
}

// SaveFor creates or replaces the entry for date. An existing entry keeps
// its Created time and highlight flag; a new one starts with
// Created == Updated and no highlight.
func (r *Repository) SaveFor(ctx context.Context, date day.Date, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.snapshot(ctx)
	if err != nil {
		return err
	}
	now := r.now()
	text = strings.TrimSpace(text)

	replaced := false
	for i := range entries {
		if entries[i].Date == date {
			entries[i].Text = text
			entries[i].Updated = now
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry.New(date, text, now))
	}
	return r.write(ctx, entries)
}

// ToggleHighlight sets the highlight flag for date. Silently a no-op when
// no entry exists.
func (r *Repository) ToggleHighlight(ctx context.Context, date day.Date, on bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.snapshot(ctx)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].Date == date {
			entries[i].Highlighted = on
			entries[i].Updated = r.now()
			return r.write(ctx, entries)
		}
	}
	return nil
}

// Delete removes the entry for date. Idempotent.
func (r *Repository) Delete(ctx context.Context, date day.Date) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.snapshot(ctx)
	if err != nil {
		return err
	}
	kept := entries[:0]
	removed := false
	for _, e := range entries {
		if e.Date == date {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return nil
	}
	return r.write(ctx, kept)
}

// EntryFor looks up the entry for date.
func (r *Repository) EntryFor(ctx context.Context, date day.Date) (entry.Entry, bool, error) {
	entries, err := r.snapshot(ctx)
	if err != nil {
		return entry.Entry{}, false, err
	}
	for _, e := range entries {
		if e.Date == date {
			return e, true, nil
		}
	}
	return entry.Entry{}, false, nil
}

// ConsecutiveDaysUpTo counts consecutive entry-bearing days ending at date,
// inclusive. Zero when date itself has no entry. Walks backward by direct
// date lookup, so the cost is the streak length, not the collection size.
func (r *Repository) ConsecutiveDaysUpTo(ctx context.Context, date day.Date) (int, error) {
	entries, err := r.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	byDate := make(map[day.Date]struct{}, len(entries))
	for _, e := range entries {
		byDate[e.Date] = struct{}{}
	}
	count := 0
	for d := date; ; d = d.Add(-1) {
		if _, ok := byDate[d]; !ok {
			break
		}
		count++
	}
	return count, nil
}

// MonthGroup is one calendar month of entries, newest entry first.
type MonthGroup struct {
	Year    int
	Month   time.Month
	Entries []entry.Entry
}

// Title renders the group heading, e.g. "August 2026".
func (g MonthGroup) Title() string {
	return time.Date(g.Year, g.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// Months groups the collection by calendar month, newest month first and
// entries sorted by date descending within each group.
func (r *Repository) Months(ctx context.Context) ([]MonthGroup, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByMonth(entries), nil
}

// GroupByMonth buckets already-sorted (date descending) entries by month.
func GroupByMonth(entries []entry.Entry) []MonthGroup {
	groups := make([]MonthGroup, 0)
	for _, e := range entries {
		y, m, _ := e.Date.Date()
		if n := len(groups); n > 0 && groups[n-1].Year == y && groups[n-1].Month == m {
			groups[n-1].Entries = append(groups[n-1].Entries, e)
			continue
		}
		groups = append(groups, MonthGroup{Year: y, Month: m, Entries: []entry.Entry{e}})
	}
	return groups
}

func sortEntries(entries []entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}
