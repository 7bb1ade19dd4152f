package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jrnl/pkg/commands/options"
)

var co = &options.ConfigOptions{}

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "jrnl",
		Short: base.Wrap80("Daily journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddConfigArgs(cmd, co)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addSearch(topLevel)
	addOpen(topLevel)
	addDelete(topLevel)
	addShell(topLevel)
	addConfig(topLevel)
	addVersion(topLevel)
}
