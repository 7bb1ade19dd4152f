// Package shell is the interactive journal REPL: a bubbletea program with a
// command prompt, a scrollback viewport, and live refresh when the data
// directory changes on disk.
package shell

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/jrnl/pkg/store"
)

// Shell runs the interactive prompt until the user exits.
type Shell struct {
	Persistence store.Persistence
}

func (n *Shell) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not start shell, no persistence")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(ctx, n.Persistence), tea.WithAltScreen())

	go func() {
		for range events {
			p.Send(fsChangedMsg{})
		}
	}()

	_, err = p.Run()
	return err
}
