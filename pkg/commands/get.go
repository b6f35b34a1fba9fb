package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trace/pkg/commands/options"
	"tableflip.dev/trace/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	o := &options.GetOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List traces grouped by month",
		Example: `
trace get
trace get --month="2026-08"
trace get --highlighted
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repo, err := loadRepo()
			if err != nil {
				return err
			}
			s := get.Get{
				Repo:            repo,
				Month:           o.Month,
				HighlightedOnly: o.HighlightedOnly,
				ShowUpdated:     o.ShowUpdated,
			}
			return s.Do(context.Background())
		},
	}

	options.AddGetArgs(cmd, o)

	topLevel.AddCommand(cmd)
}
