package entry

import (
	"sort"
	"time"
)

// Entry is one journal file, keyed by its date-derived filename.
type Entry struct {
	// Key is the filename with any configured extension stripped.
	Key string
	// Date is the calendar date parsed from Key, local midnight.
	Date time.Time
	// Path is the file's location on disk.
	Path string
	// Contents is the full text, read once at scan time.
	Contents string
	// Excerpt holds matching lines from a search. It is only ever set on
	// copies handed out as search results, never on indexed entries.
	Excerpt string
}

func New(key string, date time.Time, path, contents string) *Entry {
	return &Entry{Key: key, Date: date, Path: path, Contents: contents}
}

// WithExcerpt returns a copy of e carrying the given excerpt. The indexed
// entry itself stays untouched.
func (e *Entry) WithExcerpt(excerpt string) *Entry {
	dup := *e
	dup.Excerpt = excerpt
	return &dup
}

// Sort orders entries ascending by date, ties broken by key so iteration
// order is deterministic.
func Sort(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left, right := entries[i], entries[j]
		if left.Date.Equal(right.Date) {
			return left.Key < right.Key
		}
		return left.Date.Before(right.Date)
	})
}
