package open

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"tableflip.dev/jrnl/pkg/dates"
	"tableflip.dev/jrnl/pkg/store"
)

// ErrNoEditor reports that $EDITOR is not set, without which no entry can
// be opened.
var ErrNoEditor = errors.New("open: $EDITOR is not set")

// Open resolves a date word, creates the entry when needed, and launches
// $EDITOR on its file. Opening today's entry appends a clock marker first
// and passes the configured extra editor options.
type Open struct {
	// Date is the raw user input: a date string, "today", "yesterday", or
	// empty (today).
	Date string

	// Confirm decides whether to create a missing dated entry. Today's entry
	// is always created without asking. A nil Confirm reports the miss as
	// store.ErrNotFound instead of prompting.
	Confirm func(key string) bool

	Persistence store.Persistence
}

func (n *Open) Do(ctx context.Context) error {
	cmd, err := n.Prepare(ctx, time.Now())
	if err != nil || cmd == nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open: edit failed: %w", err)
	}
	n.Persistence.Refresh()
	return nil
}

// Prepare resolves the target, creates it when needed, appends the clock
// marker for today, and returns the editor invocation without running it.
// A nil command with a nil error means the user declined to create the
// entry. Callers run the command and then Refresh.
func (n *Open) Prepare(ctx context.Context, now time.Time) (*exec.Cmd, error) {
	if n.Persistence == nil {
		return nil, errors.New("can not open, no persistence")
	}
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return nil, ErrNoEditor
	}

	target, isToday, err := n.resolve(now)
	if err != nil {
		return nil, err
	}

	e, ok := n.Persistence.Snapshot().GetDate(target)
	if !ok {
		if isToday {
			if err := n.Persistence.CreateToday(now); err != nil {
				return nil, err
			}
		} else {
			key := dates.Format(target)
			if n.Confirm == nil {
				return nil, fmt.Errorf("%w: %s", store.ErrNotFound, key)
			}
			if !n.Confirm(key) {
				fmt.Println("Cancelled.")
				return nil, nil
			}
			if err := n.Persistence.Create(target); err != nil {
				return nil, err
			}
		}
		if e, ok = n.Persistence.Snapshot().GetDate(target); !ok {
			return nil, fmt.Errorf("open: entry for %s missing after create", dates.Format(target))
		}
	}

	if isToday {
		if err := n.Persistence.AppendClock(e.Key, now); err != nil {
			return nil, err
		}
	}

	var args []string
	if isToday {
		args = append(args, strings.Fields(n.Persistence.Config().TodayOptions)...)
	}
	args = append(args, e.Path)

	cmd := exec.CommandContext(ctx, editor, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func (n *Open) resolve(now time.Time) (time.Time, bool, error) {
	today := dates.Day(now)
	switch strings.ToLower(strings.TrimSpace(n.Date)) {
	case "", "today":
		return today, true, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), false, nil
	}
	d, ok := dates.Classify(n.Date)
	if !ok {
		return time.Time{}, false, fmt.Errorf("open: %q is not a date", n.Date)
	}
	return d, d.Equal(today), nil
}
