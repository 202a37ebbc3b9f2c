package main

import (
	"github.com/spf13/cobra"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/commands"
)

// NewSeqresCommand creates the 'seqres' command for the CLI.
func NewSeqresCommand(opts *commands.MirrorOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seqres [file]",
		Short: "Download the full sequence file for all current entries.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			savefile := "pdb_seqres.txt"
			if len(args) > 0 {
				savefile = args[0]
			}
			return commands.Seqres(savefile, *opts)
		},
	}
	return cmd
}
