package today

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/trace/pkg/journal"
	"tableflip.dev/trace/pkg/prompts"
	todayctl "tableflip.dev/trace/pkg/today"
)

type Today struct {
	Repo *journal.Repository
}

func (n *Today) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not show today, no repository")
	}

	c := todayctl.NewController(n.Repo)
	if err := c.Refresh(ctx); err != nil {
		return err
	}

	t := color.New(color.Bold, color.Underline)
	p := color.New(color.Faint, color.Italic)

	fmt.Println("")
	_, _ = t.Println(c.Date().Format("Monday, January 2, 2006"))
	_, _ = p.Println(prompts.ForDate(c.Date()))
	fmt.Println("")

	if text := c.Text(); text != "" {
		fmt.Println(text)
	} else {
		_, _ = p.Println("nothing yet, add one with: trace add <text>")
	}
	fmt.Println("")

	streak, err := n.Repo.ConsecutiveDaysUpTo(ctx, c.Date())
	if err != nil {
		return err
	}
	if streak > 1 {
		_, _ = p.Printf("%d days in a row\n\n", streak)
	}
	return nil
}
