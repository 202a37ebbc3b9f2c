package main

import (
	"github.com/spf13/cobra"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/commands"
)

// NewObsoleteCommand creates the 'obsolete' command for the CLI.
func NewObsoleteCommand(opts *commands.MirrorOptions) *cobra.Command {
	var listfile string

	cmd := &cobra.Command{
		Use:   "obsolete [directory]",
		Short: "Mirror every historically obsolete entry into the obsolete tree.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return commands.FetchObsolete(dir, listfile, *opts)
		},
	}

	cmd.Flags().StringVarP(&listfile, "list", "l", "", "Write the enumerated entry identifiers to this file, one per line")

	return cmd
}
