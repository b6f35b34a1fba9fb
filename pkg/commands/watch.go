package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/trace/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream the journal, reprinting on every change",
		Example: `
trace watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, repo, err := loadRepo()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			s := watch.Watch{Repo: repo, Persistence: p}
			return s.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
