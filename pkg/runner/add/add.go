package add

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/journal"
)

type Add struct {
	Repo *journal.Repository
	Date day.Date
	Text string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not add, no repository")
	}
	// Empty text is rejected here, before it reaches the repository.
	if strings.TrimSpace(n.Text) == "" {
		return journal.ErrEmptyText
	}
	if err := n.Repo.SaveFor(ctx, n.Date, n.Text); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", n.Date)
	return nil
}
