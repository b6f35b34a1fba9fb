package highlight

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/journal"
)

type Highlight struct {
	Repo *journal.Repository
	Date day.Date
	On   bool
}

func (n *Highlight) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not highlight, no repository")
	}
	if _, ok, err := n.Repo.EntryFor(ctx, n.Date); err != nil {
		return err
	} else if !ok {
		fmt.Printf("no trace on %s\n", n.Date)
		return nil
	}
	if err := n.Repo.ToggleHighlight(ctx, n.Date, n.On); err != nil {
		return err
	}
	if n.On {
		fmt.Printf("highlighted %s\n", n.Date)
	} else {
		fmt.Printf("unhighlighted %s\n", n.Date)
	}
	return nil
}
