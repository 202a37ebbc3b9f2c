package main

import (
	"github.com/spf13/cobra"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/commands"
)

// NewFetchCommand creates the 'fetch' command for the CLI.
func NewFetchCommand(opts *commands.MirrorOptions) *cobra.Command {
	var fetchOpts commands.FetchOptions

	cmd := &cobra.Command{
		Use:   "fetch <entry-id> [directory]",
		Short: "Retrieve a single entry from the archive.",
		Long: `Downloads one structure entry into the given directory (default: the
current directory) and prints the final local path. When the decompressed
file is already present and --overwrite is not set, no download happens
and the existing path is printed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 1 {
				dir = args[1]
			}
			return commands.Fetch(args[0], dir, fetchOpts, *opts)
		},
	}

	cmd.Flags().StringVarP(&fetchOpts.Format, "format", "f", "pdb", "Entry file format: pdb, cif or bundle")
	cmd.Flags().BoolVar(&fetchOpts.Obsolete, "obsolete", false, "Fetch the entry from the obsolete side of the archive")
	cmd.Flags().BoolVar(&fetchOpts.Extract, "extract", false, "Unpack bundle members instead of keeping the tar container")
	cmd.RegisterFlagCompletionFunc("format", formatCompletions)

	return cmd
}
