package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/commands"
	"github.com/structbio/pdbmirror-go/internal/pdbmirror/lib"
)

func main() {
	var opts commands.MirrorOptions

	var rootCmd = &cobra.Command{
		Use:   "pdbmirror",
		Short: "Mirror a subset of the wwPDB structure archive onto local storage.",
	}

	// Switches shared by every operation.
	rootCmd.PersistentFlags().StringVar(&opts.Server, "server", lib.DefaultServer, "Remote archive base URL")
	rootCmd.PersistentFlags().BoolVarP(&opts.Flat, "flat", "d", false, "Store entries directly under the tree root, without partition subdirectories")
	rootCmd.PersistentFlags().BoolVarP(&opts.Overwrite, "overwrite", "o", false, "Re-download entries even when already present")

	// Add commands
	rootCmd.AddCommand(NewUpdateCommand(&opts))
	rootCmd.AddCommand(NewFetchCommand(&opts))
	rootCmd.AddCommand(NewAllCommand(&opts))
	rootCmd.AddCommand(NewObsoleteCommand(&opts))
	rootCmd.AddCommand(NewSeqresCommand(&opts))
	rootCmd.AddCommand(NewCompletionCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
