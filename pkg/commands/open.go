package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jrnl/pkg/runner/open"
)

func addOpen(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "open [date]",
		Short: "Open an entry in $EDITOR.",
		Long: base.Wrap80("Open the entry for a date in $EDITOR. Accepts a " +
			"date, \"today\", or \"yesterday\"; defaults to today. Today's " +
			"entry is created on demand and gets a clock marker appended " +
			"before the editor starts; other missing dates prompt before " +
			"being created."),
		Example: `
jrnl open
jrnl open yesterday
jrnl open 2024-03-15
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := ""
			if len(args) > 0 {
				date = args[0]
			}
			return runOpen(date)
		},
	}
	topLevel.AddCommand(cmd)

	addOpenShortcut(topLevel, "otd", "today")
	addOpenShortcut(topLevel, "opd", "yesterday")
}

func addOpenShortcut(topLevel *cobra.Command, use, date string) {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Open " + date + "'s entry in $EDITOR.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(date)
		},
	}
	topLevel.AddCommand(cmd)
}

func runOpen(date string) error {
	p, err := loadStore()
	if err != nil {
		return err
	}
	s := open.Open{
		Date:        date,
		Confirm:     confirm("Create entry for"),
		Persistence: p,
	}
	return s.Do(context.Background())
}
