package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trace/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show journal totals and the current streak",
		Example: `
trace info
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repo, err := loadRepo()
			if err != nil {
				return err
			}
			s := info.Info{Repo: repo}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
