package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jrnl/pkg/commands/options"
	"tableflip.dev/jrnl/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	po := &options.PagerOptions{}

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search entry contents.",
		Long: base.Wrap80("Search every entry's contents for a term. " +
			"A plain term matches case-insensitively; wrap the term in " +
			"slashes to match it as a regular expression."),
		Example: `
jrnl search standup
jrnl search '/ran \d+k/'
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadStore()
			if err != nil {
				return err
			}
			s := search.Search{
				Term:        strings.Join(args, " "),
				Pager:       po.Pager,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddPagerArgs(cmd, po)
	topLevel.AddCommand(cmd)
}
