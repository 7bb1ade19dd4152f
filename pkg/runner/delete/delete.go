package delete

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/jrnl/pkg/dates"
	"tableflip.dev/jrnl/pkg/store"
)

// Delete removes one entry by date, asking first unless forced.
type Delete struct {
	Date  string
	Force bool

	// Confirm is consulted when Force is unset. A nil Confirm declines.
	Confirm func(key string) bool

	// Out receives the outcome messages. Defaults to stdout.
	Out io.Writer

	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	date, ok := dates.Classify(n.Date)
	if !ok {
		return fmt.Errorf("delete: %q is not a date", n.Date)
	}
	e, ok := n.Persistence.Snapshot().GetDate(date)
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrNotFound, dates.Format(date))
	}

	if !n.Force {
		if n.Confirm == nil || !n.Confirm(e.Key) {
			_, _ = fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := n.Persistence.Delete(e.Key); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Deleted entry: %s\n", e.Key)
	return nil
}
