package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/trace/pkg/entry"
	"tableflip.dev/trace/pkg/journal"
	"tableflip.dev/trace/pkg/printers"
)

type Get struct {
	Repo *journal.Repository

	// Month filters to one "2006-01" month; empty shows everything.
	Month string
	// HighlightedOnly drops entries without the highlight flag.
	HighlightedOnly bool
	ShowUpdated     bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not get, no repository")
	}

	groups, err := n.Repo.Months(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowUpdated: n.ShowUpdated}
	fmt.Println("")

	shown := 0
	for _, g := range groups {
		if n.Month != "" && g.Title() != n.Month && monthKey(g) != n.Month {
			continue
		}
		entries := g.Entries
		if n.HighlightedOnly {
			entries = filterHighlighted(entries)
			if len(entries) == 0 {
				continue
			}
		}
		pp.TitleWithCount(g.Title(), len(entries))
		pp.Entries(entries...)
		shown++
	}

	if shown == 0 {
		pp.Title("no traces yet")
		pp.Entries()
	}
	return nil
}

func monthKey(g journal.MonthGroup) string {
	return fmt.Sprintf("%04d-%02d", g.Year, int(g.Month))
}

func filterHighlighted(entries []entry.Entry) []entry.Entry {
	c := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Highlighted {
			c = append(c, e)
		}
	}
	return c
}
