package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jrnl/pkg/dates"
	"tableflip.dev/jrnl/pkg/entry"
)

const calendarWidth = len("11 12 13 14 15 16 17") // an example week

// WeekStrip prints one table row of the seven days starting at weekStart,
// highlighting the days that have an entry.
func (pp *PrettyPrint) WeekStrip(weekStart time.Time, entries []*entry.Entry) {
	marked := make(map[int]bool, len(entries))
	for _, e := range entries {
		marked[dayOfYear(e.Date)] = true
	}

	hi := color.New(color.FgGreen, color.Bold)
	lo := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "

	header := make([]interface{}, 7)
	row := make([]interface{}, 7)
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		header[i] = d.Weekday().String()[:2]
		cell := d.Format("01-02")
		if marked[dayOfYear(d)] {
			row[i] = hi.Sprint(cell)
		} else {
			row[i] = lo.Sprint(cell)
		}
	}
	tbl.AddRow(header...)
	tbl.AddRow(row...)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// MonthCalendar prints one month grid, weeks laid out from the configured
// first weekday, with entry days highlighted.
func (pp *PrettyPrint) MonthCalendar(year int, month time.Month, entries []*entry.Entry) {
	_, _ = fmt.Fprint(pp.out(), pp.monthBlock(year, month, entries))
}

// YearCalendar prints all twelve month grids of the year, three across.
func (pp *PrettyPrint) YearCalendar(year int, entries []*entry.Entry) {
	pad := lipgloss.NewStyle().MarginRight(3)

	for row := 0; row < 4; row++ {
		blocks := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			month := time.Month(row*3 + col + 1)
			blocks = append(blocks, pad.Render(pp.monthBlock(year, month, entries)))
		}
		_, _ = fmt.Fprintln(pp.out(), lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}
}

func (pp *PrettyPrint) monthBlock(year int, month time.Month, entries []*entry.Entry) string {
	var b strings.Builder

	tf := color.New(color.FgWhite, color.Italic)
	hf := color.New(color.Faint, color.Underline)
	hi := color.New(color.FgGreen, color.Bold)
	lo := color.New(color.Faint)

	title := fmt.Sprintf("%s %d", month, year)
	mid := (calendarWidth - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	b.WriteString(strings.Repeat(" ", mid))
	b.WriteString(tf.Sprint(title))
	b.WriteString("\n")

	cells := make([]string, 7)
	for col := 0; col < 7; col++ {
		cells[col] = hf.Sprint(pp.weekdayAbbrev(col))
	}
	b.WriteString(strings.Join(cells, " "))
	b.WriteString("\n")

	marked := make(map[int]bool, len(entries))
	for _, e := range entries {
		if e.Date.Year() == year && e.Date.Month() == month {
			marked[e.Date.Day()] = true
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	col := pp.column(first.Weekday())
	b.WriteString(strings.Repeat("   ", col))

	for d := 1; d <= dates.DaysIn(year, month); d++ {
		cell := fmt.Sprintf("%2d", d)
		if marked[d] {
			b.WriteString(hi.Sprint(cell))
		} else {
			b.WriteString(lo.Sprint(cell))
		}

		col++
		if col == 7 {
			col = 0
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// column maps a weekday onto its grid column given the configured first
// weekday (0 Monday through 6 Sunday).
func (pp *PrettyPrint) column(wd time.Weekday) int {
	return ((int(wd)+6)%7 - pp.FirstWeekday + 7) % 7
}

func (pp *PrettyPrint) weekdayAbbrev(col int) string {
	wd := time.Weekday(((pp.FirstWeekday+col)%7 + 1) % 7)
	return wd.String()[:2]
}

func dayOfYear(t time.Time) int {
	return t.Year()*1000 + t.YearDay()
}
