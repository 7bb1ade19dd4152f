// Package search matches journal entries line-by-line against a literal
// term or a /delimited/ regular expression.
package search

import (
	"regexp"
	"strings"

	"tableflip.dev/jrnl/pkg/entry"
)

// Outcome is a search's result set. Entries are copies of the indexed
// entries, in index order, each carrying the excerpt of its matching lines;
// the index itself is never touched. Fallback is set when the term looked
// like a regular expression but failed to compile, in which case matching
// was literal over the entire original term.
type Outcome struct {
	Entries  []*entry.Entry
	Fallback bool
}

// Search scans entry contents for the term. A term wrapped in leading and
// trailing slashes is treated as a regular expression (the pattern's own
// case sensitivity applies); anything else is a case-insensitive literal
// substring. An entry qualifies when at least one line matches; its excerpt
// is the trimmed matching lines joined by newlines in original order.
func Search(entries []*entry.Entry, term string) *Outcome {
	out := &Outcome{}
	if term == "" {
		return out
	}

	var re *regexp.Regexp
	if len(term) >= 2 && strings.HasPrefix(term, "/") && strings.HasSuffix(term, "/") {
		compiled, err := regexp.Compile(term[1 : len(term)-1])
		if err != nil {
			out.Fallback = true
		} else {
			re = compiled
		}
	}
	lowered := strings.ToLower(term)

	for _, e := range entries {
		var matches []string
		for _, line := range strings.Split(e.Contents, "\n") {
			if re != nil {
				if re.MatchString(line) {
					matches = append(matches, strings.TrimSpace(line))
				}
			} else if strings.Contains(strings.ToLower(line), lowered) {
				matches = append(matches, strings.TrimSpace(line))
			}
		}
		if len(matches) == 0 {
			continue
		}
		out.Entries = append(out.Entries, e.WithExcerpt(strings.Join(matches, "\n")))
	}
	return out
}
