// Package reminder nudges the user once a day, at a fixed local time, when
// today's entry has not been written yet. It only consults the repository;
// how the nudge is delivered is the Notifier's business.
package reminder

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/journal"
)

const defaultBody = "Time to leave today's trace."

// Notifier delivers a reminder to the user.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// TerminalNotifier prints reminders to a terminal.
type TerminalNotifier struct {
	Out io.Writer
}

func (n *TerminalNotifier) Notify(_ context.Context, title, body string) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	t := color.New(color.Bold)
	_, _ = t.Fprintf(out, "%s  ", title)
	_, _ = fmt.Fprintln(out, body)
	return nil
}

// ParseAt reads a clock time such as "21:00".
func ParseAt(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("reminder: parse %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// Scheduler fires a daily reminder at Hour:Minute local time.
type Scheduler struct {
	Repo     *journal.Repository
	Notifier Notifier
	Hour     int
	Minute   int

	clock func() time.Time
}

func (s *Scheduler) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now()
}

// Run fires at each occurrence of Hour:Minute until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		now := s.now()
		timer := time.NewTimer(nextOccurrence(now, s.Hour, s.Minute).Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			if err := s.fire(ctx); err != nil {
				return err
			}
		}
	}
}

// Fire sends the reminder immediately if today's entry is still missing.
// Exposed for one-shot use alongside the Run loop.
func (s *Scheduler) Fire(ctx context.Context) error {
	return s.fire(ctx)
}

func (s *Scheduler) fire(ctx context.Context) error {
	today := day.FromTime(s.now())
	if _, ok, err := s.Repo.EntryFor(ctx, today); err != nil {
		return err
	} else if ok {
		// Already written today; nothing to nag about.
		return nil
	}

	body := defaultBody
	streak, err := s.Repo.ConsecutiveDaysUpTo(ctx, today.Add(-1))
	if err != nil {
		return err
	}
	if streak > 0 && streak%7 == 0 {
		body = fmt.Sprintf("%s %d days in a row so far.", defaultBody, streak)
	}
	return s.Notifier.Notify(ctx, "Trace", body)
}

// nextOccurrence returns the next hh:mm in now's location, rolling to
// tomorrow when today's occurrence has already passed. Out-of-range values
// clamp rather than error.
func nextOccurrence(now time.Time, hour, minute int) time.Time {
	if hour < 0 {
		hour = 0
	}
	if hour > 23 {
		hour = 23
	}
	if minute < 0 {
		minute = 0
	}
	if minute > 59 {
		minute = 59
	}
	y, m, d := now.Date()
	next := time.Date(y, m, d, hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
