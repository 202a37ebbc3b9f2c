// Package commands contains the command-line operations for the
// pdbmirror application. Each exported function backs one CLI verb:
// it resolves paths, constructs the mirror manager, runs the operation
// and prints a human-readable summary.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/lib"
)

// MirrorOptions carries the switches shared by every command.
type MirrorOptions struct {
	// Server is the remote archive base URL; empty selects the default.
	Server string
	// Flat stores entries directly under the tree roots, without the
	// two-character partition nesting.
	Flat bool
	// Overwrite re-downloads entries even when already present.
	Overwrite bool
}

// newMirror builds a mirror manager rooted at targetDirectory.
func newMirror(targetDirectory string, opts MirrorOptions) (*lib.Mirror, error) {
	absRoot, err := filepath.Abs(targetDirectory)
	if err != nil {
		return nil, fmt.Errorf("could not resolve mirror root %s: %w", targetDirectory, err)
	}
	layout := lib.NewLayout(opts.Server, absRoot)
	layout.Flat = opts.Flat
	layout.Overwrite = opts.Overwrite
	return lib.NewMirror(layout, nil), nil
}
