package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trace/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's prompt, trace, and streak",
		Example: `
trace today
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repo, err := loadRepo()
			if err != nil {
				return err
			}
			s := today.Today{Repo: repo}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
