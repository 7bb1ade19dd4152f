package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jrnl/pkg/runner/shell"
)

func addShell(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell.",
		Long: base.Wrap80("Start the interactive journal shell. The shell " +
			"watches the data directory and refreshes its listing when " +
			"entries change on disk."),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			s := shell.Shell{Persistence: p}
			return s.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}
