// Package today tracks the text that belongs to the current local date and
// rolls it over when midnight passes.
package today

import (
	"context"
	"strings"
	"sync"
	"time"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/journal"
)

// Controller is a session-scoped view of today's entry. Refresh and the
// midnight loop keep the held text in step with the repository; Save pushes
// edits through it.
type Controller struct {
	Repo *journal.Repository

	mu   sync.RWMutex
	date day.Date
	text string

	clock func() time.Time
}

// NewController builds a controller over repo. Call Refresh or Run before
// reading Text.
func NewController(repo *journal.Repository) *Controller {
	return &Controller{Repo: repo}
}

func (c *Controller) now() time.Time {
	if c.clock != nil {
		return c.clock()
	}
	return time.Now()
}

// Date returns the date the controller currently considers "today".
func (c *Controller) Date() day.Date {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.date
}

// Text returns the held text for today, empty when no entry exists.
func (c *Controller) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.text
}

// Refresh re-resolves today and reloads its entry text from the repository.
func (c *Controller) Refresh(ctx context.Context) error {
	today := day.FromTime(c.now())
	e, ok, err := c.Repo.EntryFor(ctx, today)
	text := ""
	if err == nil && ok {
		text = e.Text
	}

	c.mu.Lock()
	c.date = today
	c.text = text
	c.mu.Unlock()
	return err
}

// Save validates, persists text for today, and optimistically updates the
// held value without waiting for the repository's notification round trip.
func (c *Controller) Save(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return journal.ErrEmptyText
	}
	today := day.FromTime(c.now())
	if err := c.Repo.SaveFor(ctx, today, trimmed); err != nil {
		return err
	}

	c.mu.Lock()
	c.date = today
	c.text = trimmed
	c.mu.Unlock()
	return nil
}

// Run performs an initial refresh, then refreshes again every time local
// midnight passes, until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Refresh(ctx); err != nil {
		return err
	}
	for {
		timer := time.NewTimer(untilNextMidnight(c.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			if err := c.Refresh(ctx); err != nil {
				return err
			}
		}
	}
}

// untilNextMidnight is clamped to a minimum of one second so a refresh that
// lands exactly on the boundary cannot spin.
func untilNextMidnight(now time.Time) time.Duration {
	d := day.NextMidnight(now).Sub(now)
	if d < time.Second {
		d = time.Second
	}
	return d
}
