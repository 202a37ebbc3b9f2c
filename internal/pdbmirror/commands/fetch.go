package commands

import (
	"fmt"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/lib"
	"github.com/structbio/pdbmirror-go/internal/pdbmirror/types"
)

// FetchOptions holds the configuration for the fetch command.
type FetchOptions struct {
	// Format is the CLI format name: pdb, cif or bundle.
	Format string
	// Obsolete fetches the entry from the obsolete side of the archive.
	Obsolete bool
	// Extract unpacks bundle members instead of keeping the tar container.
	Extract bool
}

// Fetch is the main function for the 'fetch' command. It retrieves a
// single entry into targetDirectory and prints the final local path.
func Fetch(id, targetDirectory string, fetchOpts FetchOptions, opts MirrorOptions) error {
	format := types.FormatPDB
	if fetchOpts.Format != "" {
		var err error
		format, err = types.ParseFormat(fetchOpts.Format)
		if err != nil {
			return err
		}
	}

	// The positional directory is a full override: the entry lands there
	// directly, with no partition nesting.
	mirror, err := newMirror(targetDirectory, opts)
	if err != nil {
		return err
	}

	path, err := mirror.Retrieve(id, lib.RetrieveOptions{
		Format:   format,
		Obsolete: fetchOpts.Obsolete,
		Dir:      mirror.Layout().CurrentRoot,
		Extract:  fetchOpts.Extract,
	})
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
