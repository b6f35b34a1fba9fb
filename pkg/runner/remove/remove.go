package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/journal"
)

type Remove struct {
	Repo *journal.Repository
	Date day.Date
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not delete, no repository")
	}
	if err := n.Repo.Delete(ctx, n.Date); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", n.Date)
	return nil
}
