package search

import (
	"bytes"
	"context"
	"errors"

	"tableflip.dev/jrnl/pkg/printers"
	"tableflip.dev/jrnl/pkg/search"
	"tableflip.dev/jrnl/pkg/store"
)

// Search matches the term against every indexed entry and prints the
// results with excerpts.
type Search struct {
	Term  string
	Pager bool

	Persistence store.Persistence
}

func (n *Search) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not search, no persistence")
	}

	out := search.Search(n.Persistence.Snapshot().Entries(), n.Term)

	pp := &printers.PrettyPrint{}
	if n.Pager {
		var buf bytes.Buffer
		pp.Out = &buf
		pp.NewLine()
		pp.SearchResults(n.Term, out)
		return printers.Page(buf.String())
	}

	pp.NewLine()
	pp.SearchResults(n.Term, out)
	return nil
}
