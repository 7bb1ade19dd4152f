package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jrnl/pkg/commands/options"
	"tableflip.dev/jrnl/pkg/runner/list"
	"tableflip.dev/jrnl/pkg/view"
)

// listShortcuts are the single-word listing commands carried over from the
// interactive shell, registered as top-level commands too.
var listShortcuts = []struct {
	use  string
	view string
}{
	{"lstw", "thisweek"},
	{"lspw", "lastweek"},
	{"lstm", "thismonth"},
	{"lspm", "lastmonth"},
	{"lsty", "thisyear"},
	{"lspy", "lastyear"},
	{"lsc", "custom"},
}

func addList(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	po := &options.PagerOptions{}

	cmd := &cobra.Command{
		Use:     "list [view]",
		Aliases: []string{"ls"},
		Short:   "List entries for a view.",
		Long: base.Wrap80("List journal entries for a named view. Views: " +
			strings.Join(view.Names, " ") +
			". The custom view takes --start and --end."),
		Example: `
jrnl list thisweek
jrnl list custom --start 2024-01-01 --end 2024-01-31
jrnl lstm -p
`,
		ValidArgs: view.Names,
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "thisweek"
			if len(args) > 0 {
				name = args[0]
			}
			return runList(name, vo, po)
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddPagerArgs(cmd, po)
	topLevel.AddCommand(cmd)

	for _, s := range listShortcuts {
		addListShortcut(topLevel, s.use, s.view)
	}
}

func addListShortcut(topLevel *cobra.Command, use, name string) {
	vo := &options.ViewOptions{}
	po := &options.PagerOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: "List entries for " + name + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(name, vo, po)
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddPagerArgs(cmd, po)
	topLevel.AddCommand(cmd)
}

func runList(name string, vo *options.ViewOptions, po *options.PagerOptions) error {
	p, err := loadStore()
	if err != nil {
		return err
	}
	s := list.List{
		View:        name,
		Start:       vo.Start,
		End:         vo.End,
		Pager:       po.Pager,
		Persistence: p,
	}
	return s.Do(context.Background())
}
