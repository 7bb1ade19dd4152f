package open

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/jrnl/pkg/store"
)

func seeded(t *testing.T, cfg *store.Config, keys ...string) store.Persistence {
	t.Helper()
	if cfg == nil {
		cfg = &store.Config{FirstWeekday: 6}
	}
	if cfg.DataDir == "" {
		cfg.DataDir = t.TempDir()
	}
	for _, key := range keys {
		if err := os.WriteFile(filepath.Join(cfg.DataDir, key), []byte("body\n"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}
	p, err := store.Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return p
}

func TestNoEditorFails(t *testing.T) {
	t.Setenv("EDITOR", "")
	n := &Open{Date: "today", Persistence: seeded(t, nil)}
	if _, err := n.Prepare(context.Background(), time.Now()); !errors.Is(err, ErrNoEditor) {
		t.Errorf("err = %v, want ErrNoEditor", err)
	}
}

func TestTodayAutoCreatesAndAppendsClock(t *testing.T) {
	t.Setenv("EDITOR", "true")
	p := seeded(t, nil)
	n := &Open{Date: "today", Persistence: p}

	now := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.Local)
	cmd, err := n.Prepare(context.Background(), now)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if cmd == nil {
		t.Fatal("no editor command prepared")
	}

	// AppendClock writes straight to disk; refresh to observe it.
	e, ok := p.Refresh().Get("2024-03-15")
	if !ok {
		t.Fatal("today's entry was not created")
	}
	if !strings.HasSuffix(e.Contents, " - 09:30: ") {
		t.Errorf("contents = %q, want trailing clock marker", e.Contents)
	}
	if got := cmd.Args[len(cmd.Args)-1]; got != e.Path {
		t.Errorf("editor target = %q, want %q", got, e.Path)
	}
}

func TestTodayOptionsPrecedePath(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	cfg := &store.Config{FirstWeekday: 6, TodayOptions: `+norm GA -c startinsert`}
	p := seeded(t, cfg)
	n := &Open{Date: "", Persistence: p}

	cmd, err := n.Prepare(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	args := cmd.Args[1 : len(cmd.Args)-1]
	want := []string{"+norm", "GA", "-c", "startinsert"}
	if len(args) != len(want) {
		t.Fatalf("editor options = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("option[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestDatedOptionsNotPassedToOtherDays(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	cfg := &store.Config{FirstWeekday: 6, TodayOptions: "+norm GA"}
	p := seeded(t, cfg, "2024-03-14")
	n := &Open{Date: "2024-03-14", Persistence: p}

	now := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.Local)
	cmd, err := n.Prepare(context.Background(), now)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if len(cmd.Args) != 2 {
		t.Errorf("args = %v, want editor and path only", cmd.Args)
	}
}

func TestYesterdayResolvesToPriorDay(t *testing.T) {
	t.Setenv("EDITOR", "true")
	p := seeded(t, nil, "2024-03-14")
	n := &Open{Date: "yesterday", Persistence: p}

	now := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.Local)
	cmd, err := n.Prepare(context.Background(), now)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if got := cmd.Args[len(cmd.Args)-1]; !strings.HasSuffix(got, "2024-03-14") {
		t.Errorf("editor target = %q", got)
	}
	e, _ := p.Refresh().Get("2024-03-14")
	if strings.Contains(e.Contents, "09:30") {
		t.Error("clock marker appended to a non-today entry")
	}
}

func TestMissingDateWithoutConfirmIsNotFound(t *testing.T) {
	t.Setenv("EDITOR", "true")
	p := seeded(t, nil)
	n := &Open{Date: "2024-03-14", Persistence: p}

	now := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.Local)
	if _, err := n.Prepare(context.Background(), now); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMissingDateConfirmedCreates(t *testing.T) {
	t.Setenv("EDITOR", "true")
	p := seeded(t, nil)
	n := &Open{
		Date:        "2024-03-14",
		Confirm:     func(string) bool { return true },
		Persistence: p,
	}

	now := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.Local)
	cmd, err := n.Prepare(context.Background(), now)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if cmd == nil {
		t.Fatal("no editor command prepared")
	}
	e, ok := p.Snapshot().Get("2024-03-14")
	if !ok {
		t.Fatal("confirmed entry was not created")
	}
	if !strings.HasPrefix(e.Contents, "Journal for Thursday, 2024-03-14") {
		t.Errorf("contents = %q", e.Contents)
	}
}

func TestNonDateArgumentFails(t *testing.T) {
	t.Setenv("EDITOR", "true")
	n := &Open{Date: "notes", Persistence: seeded(t, nil)}
	if _, err := n.Prepare(context.Background(), time.Now()); err == nil {
		t.Error("non-date argument should fail")
	}
}
