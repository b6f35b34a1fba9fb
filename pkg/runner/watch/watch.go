package watch

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/trace/pkg/journal"
	"tableflip.dev/trace/pkg/printers"
	"tableflip.dev/trace/pkg/store"
)

// Watch streams the journal to the terminal, reprinting on every change
// until interrupted. It also watches the filesystem so writes from another
// trace process show up.
type Watch struct {
	Repo        *journal.Repository
	Persistence store.Persistence
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not watch, no repository")
	}
	if n.Persistence != nil {
		if err := n.Persistence.Watch(ctx); err != nil {
			return err
		}
	}

	snapshots, err := n.Repo.ObserveAll(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	for snap := range snapshots {
		fmt.Print("\033[H\033[2J") // clear between snapshots
		for _, g := range journal.GroupByMonth(snap) {
			pp.Month(g)
		}
		if len(snap) == 0 {
			pp.Title("no traces yet")
			pp.Entries()
		}
	}
	return nil
}
