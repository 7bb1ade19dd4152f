package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jrnl/pkg/entry"
	"tableflip.dev/jrnl/pkg/search"
	"tableflip.dev/jrnl/pkg/view"
)

// PrettyPrint renders selections and search results. The zero value writes
// to stdout with a Sunday week start.
type PrettyPrint struct {
	Out io.Writer

	// FirstWeekday uses 0 for Monday through 6 for Sunday.
	FirstWeekday int

	ShowCalendarWeek  bool
	ShowCalendarMonth bool
	ShowCalendarYear  bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return os.Stdout
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Selection prints a view: title, the calendar matching the view's span when
// enabled, then the entry list.
func (pp *PrettyPrint) Selection(sel *view.Selection) {
	pp.Title("Entries - " + sel.Label)
	pp.NewLine()

	switch {
	case sel.WeekStart != nil && pp.ShowCalendarWeek:
		pp.WeekStrip(*sel.WeekStart, sel.Entries)
		pp.NewLine()
	case sel.Month != 0 && pp.ShowCalendarMonth:
		pp.MonthCalendar(sel.Year, sel.Month, sel.Entries)
		pp.NewLine()
	case sel.Month == 0 && sel.Year != 0 && pp.ShowCalendarYear:
		pp.YearCalendar(sel.Year, sel.Entries)
		pp.NewLine()
	}

	pp.Entries(sel.Entries...)
}

func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	g := color.New(color.FgGreen)
	tbl := uitable.New()
	tbl.Separator = " "
	for _, e := range entries {
		tbl.AddRow(" -", g.Sprint(e.Key))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// SearchResults prints matched entries with their excerpt lines indented
// beneath each date.
func (pp *PrettyPrint) SearchResults(term string, out *search.Outcome) {
	pp.Title("Search results - " + term)
	pp.NewLine()

	if out.Fallback {
		w := color.New(color.FgYellow, color.Italic)
		_, _ = w.Fprintf(pp.out(), " %q is not a valid expression, matching it literally\n\n", term)
	}

	if len(out.Entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	g := color.New(color.FgGreen)
	f := color.New(color.Faint)
	for _, e := range out.Entries {
		_, _ = fmt.Fprintf(pp.out(), " - %s\n", g.Sprint(e.Key))
		for _, line := range strings.Split(e.Excerpt, "\n") {
			_, _ = f.Fprintf(pp.out(), "     %s\n", line)
		}
	}
	pp.NewLine()
}

// Errorf writes a highlighted error line to the color-aware stderr.
func Errorf(format string, a ...interface{}) {
	r := color.New(color.FgRed, color.Bold)
	_, _ = r.Fprintf(color.Error, "ERROR: "+format+"\n", a...)
}
