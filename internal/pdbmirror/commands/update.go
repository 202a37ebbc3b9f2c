package commands

import (
	"fmt"
)

// Update is the main function for the 'update' command. It applies the
// most recent weekly change set to the local mirror: added and modified
// entries are fetched, obsolete entries are moved to the obsolete tree.
func Update(targetDirectory string, opts MirrorOptions) error {
	mirror, err := newMirror(targetDirectory, opts)
	if err != nil {
		return err
	}

	cs, err := mirror.Update()
	if cs != nil {
		fmt.Printf("Applied release period %s: %d added, %d modified, %d obsolete.\n",
			cs.Period, len(cs.Added), len(cs.Modified), len(cs.Obsolete))
	}
	if err != nil {
		return fmt.Errorf("update finished with errors: %w", err)
	}
	return nil
}
