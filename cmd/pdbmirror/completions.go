package main

import (
	"github.com/spf13/cobra"
)

// formatCompletions provides tab completion for the --format flag of the
// fetch command, with a short description per format.
func formatCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"pdb\tlegacy flat-file format (pdb{id}.ent)",
		"cif\tstructured-text format ({id}.cif)",
		"bundle\tmulti-file tar bundle for oversized entries",
	}, cobra.ShellCompDirectiveNoFileComp
}
