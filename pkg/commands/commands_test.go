package commands

import (
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()

	want := []string{
		"list", "search", "open", "otd", "opd", "delete", "shell",
		"config", "version",
		"lstw", "lspw", "lstm", "lspm", "lsty", "lspy", "lsc",
	}
	have := make(map[string]bool)
	for _, c := range root.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing command %q", name)
		}
	}
}

func TestAliases(t *testing.T) {
	root := New()

	cases := map[string]string{
		"ls": "list",
		"rm": "delete",
	}
	for alias, name := range cases {
		cmd, _, err := root.Find([]string{alias})
		if err != nil {
			t.Errorf("find %q: %v", alias, err)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("alias %q resolved to %q, want %q", alias, cmd.Name(), name)
		}
	}
}

func TestListShortcutsCoverEveryView(t *testing.T) {
	root := New()
	list, _, err := root.Find([]string{"list"})
	if err != nil {
		t.Fatalf("find list: %v", err)
	}

	views := make(map[string]bool)
	for _, v := range list.ValidArgs {
		views[v] = true
	}
	for _, s := range listShortcuts {
		if !views[s.view] {
			t.Errorf("shortcut %q targets unknown view %q", s.use, s.view)
		}
	}
	if len(listShortcuts) != len(list.ValidArgs) {
		t.Errorf("%d shortcuts for %d views", len(listShortcuts), len(list.ValidArgs))
	}
}
