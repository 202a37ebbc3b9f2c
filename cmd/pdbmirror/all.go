package main

import (
	"github.com/spf13/cobra"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/commands"
)

// NewAllCommand creates the 'all' command for the CLI.
func NewAllCommand(opts *commands.MirrorOptions) *cobra.Command {
	var listfile string

	cmd := &cobra.Command{
		Use:   "all [directory]",
		Short: "Mirror every entry of the archive into the local tree.",
		Long: `Downloads every entry named in the archive's global index, skipping
entries already present locally. An interrupted run is restarted from the
beginning; the skip-if-exists check keeps the restart cheap.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return commands.FetchAll(dir, listfile, *opts)
		},
	}

	cmd.Flags().StringVarP(&listfile, "list", "l", "", "Write the enumerated entry identifiers to this file, one per line")

	return cmd
}
