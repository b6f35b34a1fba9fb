package remind

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/trace/pkg/journal"
	"tableflip.dev/trace/pkg/reminder"
)

// Remind runs the daily reminder loop in the foreground.
type Remind struct {
	Repo *journal.Repository
	At   string
	Now  bool
}

func (n *Remind) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not remind, no repository")
	}
	hour, minute, err := reminder.ParseAt(n.At)
	if err != nil {
		return err
	}
	s := &reminder.Scheduler{
		Repo:     n.Repo,
		Notifier: &reminder.TerminalNotifier{},
		Hour:     hour,
		Minute:   minute,
	}
	if n.Now {
		return s.Fire(ctx)
	}
	fmt.Printf("reminding daily at %02d:%02d, ctrl-c to stop\n", hour, minute)
	return s.Run(ctx)
}
