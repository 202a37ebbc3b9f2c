package main

import (
	"github.com/spf13/cobra"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/commands"
)

// NewUpdateCommand creates the 'update' command for the CLI.
func NewUpdateCommand(opts *commands.MirrorOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [directory]",
		Short: "Apply the most recent weekly change set to the local mirror.",
		Long: `Fetches the newest weekly status lists from the archive, downloads all
added and modified entries, and moves obsolete entries from the current
tree into the obsolete tree. Suitable for running as a weekly cron job.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return commands.Update(dir, *opts)
		},
	}
	return cmd
}
