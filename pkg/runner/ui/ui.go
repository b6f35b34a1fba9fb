package ui

import (
	"context"
	"errors"

	"tableflip.dev/trace/pkg/journal"
	"tableflip.dev/trace/pkg/store"
	"tableflip.dev/trace/pkg/tui"
)

type UI struct {
	Repo        *journal.Repository
	Persistence store.Persistence
}

func (i *UI) Do(_ context.Context) error {
	if i.Repo == nil {
		return errors.New("can not open ui, no repository")
	}
	return tui.Run(i.Repo, i.Persistence)
}
