package view

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/jrnl/pkg/entry"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func fixture(days ...time.Time) []*entry.Entry {
	entries := make([]*entry.Entry, 0, len(days))
	for _, d := range days {
		entries = append(entries, entry.New(d.Format("2006-01-02"), d, "", ""))
	}
	entry.Sort(entries)
	return entries
}

func keys(entries []*entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

func TestSelectThisWeekSundayStart(t *testing.T) {
	// 2024-03-15 is a Friday; with a Sunday week start the window is
	// 2024-03-10 through 2024-03-16.
	today := day(2024, time.March, 15)
	entries := fixture(
		day(2024, time.March, 9),  // saturday before, excluded
		day(2024, time.March, 10), // window start
		day(2024, time.March, 15),
		day(2024, time.March, 16), // window end
		day(2024, time.March, 17), // next week, excluded
	)

	sel, err := Select(entries, "thisweek", today, 6, "", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !sel.Start.Equal(day(2024, time.March, 10)) || !sel.End.Equal(day(2024, time.March, 16)) {
		t.Errorf("boundary = %v..%v", sel.Start, sel.End)
	}
	got := keys(sel.Entries)
	want := []string{"2024-03-10", "2024-03-15", "2024-03-16"}
	if len(got) != len(want) {
		t.Fatalf("selected %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("selected[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if sel.WeekStart == nil || !sel.WeekStart.Equal(sel.Start) {
		t.Error("week view should carry its week start")
	}
}

func TestSelectLastWeek(t *testing.T) {
	today := day(2024, time.March, 15)
	sel, err := Select(nil, "lastweek", today, 6, "", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !sel.Start.Equal(day(2024, time.March, 3)) || !sel.End.Equal(day(2024, time.March, 9)) {
		t.Errorf("boundary = %v..%v", sel.Start, sel.End)
	}
}

func TestSelectThisMonth(t *testing.T) {
	today := day(2024, time.February, 10)
	sel, err := Select(nil, "thismonth", today, 6, "", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !sel.Start.Equal(day(2024, time.February, 1)) || !sel.End.Equal(day(2024, time.February, 29)) {
		t.Errorf("boundary = %v..%v", sel.Start, sel.End)
	}
	if sel.Month != time.February || sel.Year != 2024 {
		t.Errorf("context = %v %d", sel.Month, sel.Year)
	}
}

func TestSelectLastMonthYearRollover(t *testing.T) {
	today := day(2024, time.January, 10)
	entries := fixture(
		day(2023, time.November, 30), // excluded
		day(2023, time.December, 1),
		day(2023, time.December, 31),
		day(2024, time.January, 1), // excluded
	)

	sel, err := Select(entries, "lastmonth", today, 6, "", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !sel.Start.Equal(day(2023, time.December, 1)) || !sel.End.Equal(day(2023, time.December, 31)) {
		t.Errorf("boundary = %v..%v", sel.Start, sel.End)
	}
	if sel.Month != time.December || sel.Year != 2023 {
		t.Errorf("context = %v %d, want December 2023", sel.Month, sel.Year)
	}
	got := keys(sel.Entries)
	if len(got) != 2 || got[0] != "2023-12-01" || got[1] != "2023-12-31" {
		t.Errorf("selected %v", got)
	}
}

func TestSelectYears(t *testing.T) {
	today := day(2024, time.June, 1)
	sel, err := Select(nil, "thisyear", today, 6, "", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !sel.Start.Equal(day(2024, time.January, 1)) || !sel.End.Equal(day(2024, time.December, 31)) {
		t.Errorf("thisyear boundary = %v..%v", sel.Start, sel.End)
	}
	if sel.Year != 2024 || sel.Month != 0 {
		t.Errorf("context = %v %d", sel.Month, sel.Year)
	}

	sel, err = Select(nil, "lastyear", today, 6, "", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Year != 2023 || !sel.Start.Equal(day(2023, time.January, 1)) {
		t.Errorf("lastyear = %v..%v (%d)", sel.Start, sel.End, sel.Year)
	}
}

func TestSelectCustom(t *testing.T) {
	entries := fixture(
		day(2024, time.January, 1),
		day(2024, time.January, 15),
		day(2024, time.February, 1),
	)
	sel, err := Select(entries, "custom", day(2024, time.June, 1), 6, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	got := keys(sel.Entries)
	if len(got) != 2 || got[0] != "2024-01-01" || got[1] != "2024-01-15" {
		t.Errorf("selected %v", got)
	}
}

func TestSelectCustomMissingBoundFails(t *testing.T) {
	_, err := Select(nil, "custom", day(2024, time.June, 1), 6, "", "2024-01-01")
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
	_, err = Select(nil, "custom", day(2024, time.June, 1), 6, "2024-01-01", "")
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
}

func TestSelectCustomUnparseableBoundFails(t *testing.T) {
	_, err := Select(nil, "custom", day(2024, time.June, 1), 6, "garbage", "2024-01-01")
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
}

func TestSelectCustomInvertedRangeSelectsNothing(t *testing.T) {
	entries := fixture(day(2024, time.January, 15))
	sel, err := Select(entries, "custom", day(2024, time.June, 1), 6, "2024-01-31", "2024-01-01")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(sel.Entries) != 0 {
		t.Errorf("inverted range selected %v", keys(sel.Entries))
	}
}

func TestSelectUnknownViewFails(t *testing.T) {
	_, err := Select(nil, "fortnight", day(2024, time.June, 1), 6, "", "")
	if !errors.Is(err, ErrUnknownView) {
		t.Errorf("err = %v, want ErrUnknownView", err)
	}
}

func TestSelectViewNameIsCaseInsensitive(t *testing.T) {
	if _, err := Select(nil, "ThisWeek", day(2024, time.June, 1), 6, "", ""); err != nil {
		t.Errorf("mixed-case view name rejected: %v", err)
	}
}
