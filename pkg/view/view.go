// Package view computes the date boundaries for each named journal view and
// filters an index snapshot down to the entries inside them.
package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/jrnl/pkg/dates"
	"tableflip.dev/jrnl/pkg/entry"
)

var (
	// ErrUnknownView reports a view name outside the supported set.
	ErrUnknownView = errors.New("view: unknown view name")
	// ErrInvalidRange reports a custom view with a missing or unparseable
	// boundary.
	ErrInvalidRange = errors.New("view: invalid custom date range")
)

// Names lists the supported view names.
var Names = []string{
	"thisweek", "lastweek",
	"thismonth", "lastmonth",
	"thisyear", "lastyear",
	"custom",
}

// Selection is the outcome of selecting a view: the matching entries in
// index order, the inclusive boundary, and the calendar context the
// presentation layer renders from. WeekStart is set for week views; Month
// (nonzero) and Year for month views; Year alone for year views. None of
// the context fields affect filtering.
type Selection struct {
	Entries []*entry.Entry
	Start   time.Time
	End     time.Time
	Label   string

	WeekStart *time.Time
	Month     time.Month
	Year      int
}

// Select computes the boundary for the named view anchored on today and
// returns the entries whose dates fall inside it, in index order. The
// custom view requires both startRaw and endRaw; the span between them is
// taken literally, without reordering.
func Select(entries []*entry.Entry, name string, today time.Time, firstWeekday int, startRaw, endRaw string) (*Selection, error) {
	today = dates.Day(today)
	sel := &Selection{}

	switch strings.ToLower(name) {
	case "thisweek":
		ws := dates.WeekStart(today, firstWeekday)
		sel.Start, sel.End = ws, ws.AddDate(0, 0, 6)
		sel.WeekStart = &ws
		sel.Label = "this week"
	case "lastweek":
		ws := dates.WeekStart(today, firstWeekday).AddDate(0, 0, -7)
		sel.Start, sel.End = ws, ws.AddDate(0, 0, 6)
		sel.WeekStart = &ws
		sel.Label = "last week"
	case "thismonth":
		sel.Start, sel.End = dates.MonthSpan(today.Year(), today.Month())
		sel.Month, sel.Year = today.Month(), today.Year()
		sel.Label = "this month"
	case "lastmonth":
		year, month := dates.PrevMonth(today.Year(), today.Month())
		sel.Start, sel.End = dates.MonthSpan(year, month)
		sel.Month, sel.Year = month, year
		sel.Label = "last month"
	case "thisyear":
		sel.Start, sel.End = dates.YearSpan(today.Year())
		sel.Year = today.Year()
		sel.Label = "this year"
	case "lastyear":
		sel.Start, sel.End = dates.YearSpan(today.Year() - 1)
		sel.Year = today.Year() - 1
		sel.Label = "last year"
	case "custom":
		if startRaw == "" || endRaw == "" {
			return nil, fmt.Errorf("%w: both start and end are required", ErrInvalidRange)
		}
		start, ok := dates.Classify(startRaw)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a valid date", ErrInvalidRange, startRaw)
		}
		end, ok := dates.Classify(endRaw)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a valid date", ErrInvalidRange, endRaw)
		}
		sel.Start, sel.End = start, end
		sel.Label = fmt.Sprintf("custom [%s - %s]", startRaw, endRaw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}

	for _, e := range entries {
		if dates.Between(e.Date, sel.Start, sel.End) {
			sel.Entries = append(sel.Entries, e)
		}
	}
	return sel, nil
}
