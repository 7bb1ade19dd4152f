package commands

import (
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/jrnl/pkg/store"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Edit the config file in $EDITOR.",
		Long: base.Wrap80("Open the config file in $EDITOR, creating it " +
			"with commented defaults first if it does not exist."),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := os.Getenv("EDITOR")
			if editor == "" {
				return errors.New("$EDITOR is not set")
			}
			path, err := store.EnsureConfigFile(co.Path)
			if err != nil {
				return err
			}
			edit := exec.Command(editor, path)
			edit.Stdin = os.Stdin
			edit.Stdout = os.Stdout
			edit.Stderr = os.Stderr
			return edit.Run()
		},
	}
	topLevel.AddCommand(cmd)
}
