package commands

import (
	"fmt"
	"path/filepath"
)

// Seqres is the main function for the 'seqres' command. It downloads
// the full per-entry sequence file to savefile.
func Seqres(savefile string, opts MirrorOptions) error {
	absFile, err := filepath.Abs(savefile)
	if err != nil {
		return fmt.Errorf("could not resolve output path %s: %w", savefile, err)
	}
	mirror, err := newMirror(filepath.Dir(absFile), opts)
	if err != nil {
		return err
	}
	if err := mirror.FetchSeqres(absFile); err != nil {
		return err
	}
	fmt.Printf("Sequence file saved to %q.\n", absFile)
	return nil
}
