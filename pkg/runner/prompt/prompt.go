package prompt

import (
	"context"
	"fmt"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/prompts"
)

type Prompt struct {
	Date day.Date
}

func (n *Prompt) Do(_ context.Context) error {
	fmt.Println(prompts.ForDate(n.Date))
	return nil
}
