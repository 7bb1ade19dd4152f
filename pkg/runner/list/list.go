package list

import (
	"bytes"
	"context"
	"errors"
	"time"

	"tableflip.dev/jrnl/pkg/printers"
	"tableflip.dev/jrnl/pkg/store"
	"tableflip.dev/jrnl/pkg/view"
)

// List renders one named view of the journal index.
type List struct {
	View  string
	Start string
	End   string
	Pager bool

	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}

	sel, err := n.Select(time.Now())
	if err != nil {
		return err
	}

	pp := Printer(n.Persistence.Config())
	if n.Pager {
		var buf bytes.Buffer
		pp.Out = &buf
		pp.NewLine()
		pp.Selection(sel)
		return printers.Page(buf.String())
	}

	pp.NewLine()
	pp.Selection(sel)
	return nil
}

// Select computes the selection without rendering it. The shell uses this to
// draw into its own viewport.
func (n *List) Select(today time.Time) (*view.Selection, error) {
	cfg := n.Persistence.Config()
	return view.Select(n.Persistence.Snapshot().Entries(), n.View, today, cfg.FirstWeekday, n.Start, n.End)
}

// Printer builds a PrettyPrint wired to the config's calendar switches.
func Printer(cfg *store.Config) *printers.PrettyPrint {
	return &printers.PrettyPrint{
		FirstWeekday:      cfg.FirstWeekday,
		ShowCalendarWeek:  cfg.ShowCalendarWeek,
		ShowCalendarMonth: cfg.ShowCalendarMonth,
		ShowCalendarYear:  cfg.ShowCalendarYear,
	}
}
