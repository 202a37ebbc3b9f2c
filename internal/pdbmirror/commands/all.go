package commands

import (
	"fmt"
)

// FetchAll is the main function for the 'all' command. It mirrors every
// entry in the archive's global index, relying on the skip-if-exists
// check to make interrupted runs cheap to restart.
func FetchAll(targetDirectory, listfile string, opts MirrorOptions) error {
	mirror, err := newMirror(targetDirectory, opts)
	if err != nil {
		return err
	}
	if err := mirror.DownloadAll(listfile); err != nil {
		return fmt.Errorf("full mirror finished with errors: %w", err)
	}
	fmt.Printf("Full archive mirrored into %q.\n", mirror.Layout().CurrentRoot)
	return nil
}

// FetchObsolete is the main function for the 'obsolete' command. It
// mirrors every historically obsolete entry into the obsolete tree.
func FetchObsolete(targetDirectory, listfile string, opts MirrorOptions) error {
	mirror, err := newMirror(targetDirectory, opts)
	if err != nil {
		return err
	}
	if err := mirror.DownloadObsolete(listfile); err != nil {
		return fmt.Errorf("obsolete mirror finished with errors: %w", err)
	}
	fmt.Printf("Obsolete entries mirrored into %q.\n", mirror.Layout().ObsoleteRoot)
	return nil
}
