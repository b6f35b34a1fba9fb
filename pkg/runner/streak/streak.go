package streak

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/journal"
)

type Streak struct {
	Repo *journal.Repository
	Date day.Date
}

func (n *Streak) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not count streak, no repository")
	}
	count, err := n.Repo.ConsecutiveDaysUpTo(ctx, n.Date)
	if err != nil {
		return err
	}
	switch count {
	case 1:
		fmt.Printf("1 day up to %s\n", n.Date)
	default:
		fmt.Printf("%d days up to %s\n", count, n.Date)
	}
	return nil
}
