package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <date>",
		Short: "Delete a day's trace",
		Example: `
trace delete 2026-08-30
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := day.Parse(args[0])
			if err != nil {
				return err
			}
			_, repo, err := loadRepo()
			if err != nil {
				return err
			}
			s := remove.Remove{Repo: repo, Date: on}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
