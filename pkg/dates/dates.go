// Package dates turns filenames and user input into calendar dates and
// provides the range arithmetic behind the named journal views.
package dates

import "time"

// LayoutISO is the canonical entry filename layout.
const LayoutISO = "2006-01-02"

// layouts are tried in order by Classify. The ISO form comes first because
// it is the filename convention; the rest tolerate the date-ish strings
// people type at prompts. Time-of-day, when present, is discarded.
var layouts = []string{
	LayoutISO,
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Classify parses raw into a local-timezone calendar date. It is a
// classification, not a hard error: anything unparseable reports ok=false.
func Classify(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, raw, time.Local)
		if err != nil {
			continue
		}
		return Day(t), true
	}
	return time.Time{}, false
}

// Day converts t to the local timezone and drops the time-of-day.
func Day(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Format renders a date the way entry files are named.
func Format(t time.Time) string {
	return t.Format(LayoutISO)
}

// Weekday numbering in config follows the original tool: 0=Monday..6=Sunday.
// Go counts Sunday=0..Saturday=6, so convert before doing offset math.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekStart returns the most recent occurrence of firstWeekday
// (0=Monday..6=Sunday) on or before today.
func WeekStart(today time.Time, firstWeekday int) time.Time {
	today = Day(today)
	offset := (weekdayIndex(today) - firstWeekday + 7) % 7
	return today.AddDate(0, 0, -offset)
}

// MonthSpan returns the first and last day of the given month.
func MonthSpan(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, -1)
}

// PrevMonth resolves the month before the given one, rolling the year back
// across a January boundary.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// YearSpan returns January 1 and December 31 of the given year.
func YearSpan(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)
}

// Between reports whether day falls in the inclusive [start, end] span.
func Between(day, start, end time.Time) bool {
	return !day.Before(start) && !day.After(end)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
