package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jrnl/pkg/commands/options"
	"tableflip.dev/jrnl/pkg/runner/delete"
)

func addDelete(topLevel *cobra.Command) {
	fo := &options.ForceOptions{}

	cmd := &cobra.Command{
		Use:     "delete <date>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry.",
		Long: base.Wrap80("Delete the entry for a date. Asks for " +
			"confirmation unless --force is set."),
		Example: `
jrnl delete 2024-03-15
jrnl rm 2024-03-15 -f
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			s := delete.Delete{
				Date:        args[0],
				Force:       fo.Force,
				Confirm:     confirm("Delete entry"),
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddForceArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}
