// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ConfigOptions carries the config file override, shared by every command.
type ConfigOptions struct {
	Path string
}

// AddConfigArgs wires the config flag as a persistent root flag.
func AddConfigArgs(cmd *cobra.Command, o *ConfigOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "config", "",
		"Path to the config file.")
}

// ViewOptions captures the custom view boundary flags.
type ViewOptions struct {
	Start string
	End   string
}

// AddViewArgs wires the custom view flags on the provided command.
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVar(&o.Start, "start", "",
		"Start date for the custom view.")
	cmd.Flags().StringVar(&o.End, "end", "",
		"End date for the custom view.")
}

// PagerOptions captures the pager flag.
type PagerOptions struct {
	Pager bool
}

// AddPagerArgs wires the pager flag on the provided command.
func AddPagerArgs(cmd *cobra.Command, o *PagerOptions) {
	cmd.Flags().BoolVarP(&o.Pager, "pager", "p", false,
		"Pipe output through $PAGER.")
}

// ForceOptions captures the confirmation skip flag.
type ForceOptions struct {
	Force bool
}

// AddForceArgs wires the force flag on the provided command.
func AddForceArgs(cmd *cobra.Command, o *ForceOptions) {
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false,
		"Skip the confirmation prompt.")
}
