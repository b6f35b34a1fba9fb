package info

import (
	"context"
	"errors"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/journal"
	"tableflip.dev/trace/pkg/printers"
)

type Info struct {
	Repo *journal.Repository
}

func (n *Info) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not show info, no repository")
	}

	entries, err := n.Repo.List(ctx)
	if err != nil {
		return err
	}
	streak, err := n.Repo.ConsecutiveDaysUpTo(ctx, day.Today())
	if err != nil {
		return err
	}

	highlighted := 0
	for _, e := range entries {
		if e.Highlighted {
			highlighted++
		}
	}

	first, last := "", ""
	if len(entries) > 0 {
		// entries are sorted newest first
		last = entries[0].Date.String()
		first = entries[len(entries)-1].Date.String()
	}

	pp := printers.PrettyPrint{}
	pp.Stats(len(entries), highlighted, streak, first, last)
	return nil
}
