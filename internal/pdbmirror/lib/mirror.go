package lib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/types"
)

// Status list filenames inside a release period directory.
const (
	addedList    = "added.pdb"
	modifiedList = "modified.pdb"
	obsoleteList = "obsolete.pdb"
)

// Mirror manages one local mirror tree against one remote archive. It
// computes per-entry paths, decides skip-vs-fetch, and relocates entries
// between the current and obsolete subtrees as their status changes.
type Mirror struct {
	layout Layout
	remote *Remote
}

// NewMirror builds a Mirror over the given layout and remote client.
func NewMirror(layout Layout, remote *Remote) *Mirror {
	if remote == nil {
		remote = NewRemote(nil)
	}
	return &Mirror{layout: layout, remote: remote}
}

// Layout exposes the mirror's immutable configuration.
func (m *Mirror) Layout() Layout { return m.layout }

// RetrieveOptions selects the variant of a single-entry retrieval.
type RetrieveOptions struct {
	// Format of the entry file; FormatPDB is the zero value.
	Format types.Format
	// Obsolete places the entry in (and fetches it from) the obsolete tree.
	Obsolete bool
	// Dir overrides the computed destination directory entirely.
	Dir string
	// Extract unpacks bundle members instead of retaining the single
	// decompressed tar container. Ignored for the other formats.
	Extract bool
}

// Retrieve fetches one entry into the local tree and returns the final
// local path. When overwrite is disabled and the decompressed target is
// already present, the existing path is returned without any network
// access; that fast path is a success, not an error.
func (m *Mirror) Retrieve(id string, opts RetrieveOptions) (string, error) {
	code, err := NormalizeID(id)
	if err != nil {
		return "", err
	}

	destDir := m.layout.EntryDir(code, opts.Obsolete, opts.Dir)
	finalFile := filepath.Join(destDir, opts.Format.FinalName(code))

	// Skip the download if the decompressed file already exists.
	if !m.layout.Overwrite && fileExists(finalFile) {
		log.Debugw("entry already present", "id", code, "path", finalFile)
		return finalFile, nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", destDir, err)
	}

	url := m.layout.RemoteURL(code, opts.Format, opts.Obsolete)
	archive := filepath.Join(destDir, opts.Format.ArchiveName(code))
	log.Infow("downloading entry", "id", code, "format", opts.Format.String(), "url", url)
	if err := m.remote.Download(url, archive); err != nil {
		return "", err
	}

	if opts.Format == types.FormatBundle && opts.Extract {
		if err := ExtractTarGz(archive, destDir); err != nil {
			return "", err
		}
		return destDir, nil
	}
	if err := Gunzip(archive, finalFile); err != nil {
		return "", err
	}
	return finalFile, nil
}

// RecentChanges resolves the most recent release period and fetches its
// three status lists. Directory names in the period listing are compared
// numerically; the largest wins.
func (m *Mirror) RecentChanges() (*types.ChangeSet, error) {
	lines, err := m.remote.Lines(m.layout.StatusURL())
	if err != nil {
		return nil, err
	}
	period, err := LatestPeriod(lines)
	if err != nil {
		return nil, err
	}

	cs := &types.ChangeSet{Period: period}
	for _, l := range []struct {
		file string
		into *[]string
	}{
		{addedList, &cs.Added},
		{modifiedList, &cs.Modified},
		{obsoleteList, &cs.Obsolete},
	} {
		url := m.layout.PeriodURL(period) + l.file
		lines, err := m.remote.Lines(url)
		if err != nil {
			return nil, err
		}
		ids, err := ParseStatusList(l.file, lines)
		if err != nil {
			return nil, err
		}
		*l.into = ids
	}
	return cs, nil
}

// Update synchronizes the local mirror with the most recent weekly
// change set: added and modified entries are fetched (or skipped when
// already present) and obsolete entries are moved into the obsolete
// tree. Per-entry failures are collected and do not halt the batch.
func (m *Mirror) Update() (*types.ChangeSet, error) {
	cs, err := m.RecentChanges()
	if err != nil {
		return nil, err
	}
	log.Infow("syncing release period", "period", cs.Period,
		"added", len(cs.Added), "modified", len(cs.Modified), "obsolete", len(cs.Obsolete))

	var errs *multierror.Error
	for _, id := range append(append([]string{}, cs.Added...), cs.Modified...) {
		if _, err := m.Retrieve(id, RetrieveOptions{}); err != nil {
			log.Errorw("failed to fetch entry", "id", id, "err", err)
			errs = multierror.Append(errs, err)
		}
	}
	for _, id := range cs.Obsolete {
		if err := m.obsolete(id); err != nil {
			log.Errorw("failed to obsolete entry", "id", id, "err", err)
			errs = multierror.Append(errs, err)
		}
	}
	return cs, errs.ErrorOrNil()
}

// obsolete relocates one entry's legacy file from the current tree to
// the obsolete tree. An entry already moved, or missing from both trees,
// is informational only; the mirror is not auto-repaired.
func (m *Mirror) obsolete(id string) error {
	code, err := NormalizeID(id)
	if err != nil {
		return err
	}
	oldFile := m.layout.FinalPath(code, types.FormatPDB, false, "")
	newDir := m.layout.EntryDir(code, true, "")
	newFile := filepath.Join(newDir, types.FormatPDB.FinalName(code))

	switch {
	case fileExists(oldFile):
		if err := os.MkdirAll(newDir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", newDir, err)
		}
		if err := MoveFile(oldFile, newFile); err != nil {
			return fmt.Errorf("moving %s to obsolete tree: %w", oldFile, err)
		}
		log.Infow("moved obsolete entry", "id", code, "path", newFile)
	case fileExists(newFile):
		log.Infow("obsolete entry already moved", "id", code, "path", newFile)
	default:
		log.Infow("obsolete entry missing from both trees", "id", code)
	}
	return nil
}

// DownloadAll mirrors every entry in the archive's global index into the
// current tree, skipping those already present. When listfile is
// non-empty the enumerated identifiers are written there one per line.
func (m *Mirror) DownloadAll(listfile string) error {
	lines, err := m.remote.Lines(m.layout.EntriesIndexURL())
	if err != nil {
		return err
	}
	ids := ParseEntriesIndex(lines)
	log.Infow("mirroring full archive", "entries", len(ids))

	errs := m.retrieveEach(ids, RetrieveOptions{})
	if listfile != "" {
		if err := writeListFile(listfile, ids); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// DownloadObsolete mirrors every historically obsolete entry into the
// obsolete tree, skipping those already present. When listfile is
// non-empty the enumerated identifiers are written there one per line.
func (m *Mirror) DownloadObsolete(listfile string) error {
	lines, err := m.remote.Lines(m.layout.ObsoleteIndexURL())
	if err != nil {
		return err
	}
	ids, err := ParseObsoleteIndex(lines)
	if err != nil {
		return err
	}
	log.Infow("mirroring obsolete entries", "entries", len(ids))

	errs := m.retrieveEach(ids, RetrieveOptions{Obsolete: true})
	if listfile != "" {
		if err := writeListFile(listfile, ids); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// retrieveEach runs a legacy-format fetch-or-skip over a batch of
// identifiers, one at a time, collecting failures without stopping.
func (m *Mirror) retrieveEach(ids []string, opts RetrieveOptions) *multierror.Error {
	var errs *multierror.Error
	for _, id := range ids {
		if _, err := m.Retrieve(id, opts); err != nil {
			log.Errorw("failed to fetch entry", "id", id, "err", err)
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

// FetchSeqres downloads the full sequence file for all current entries
// to savefile. The file is served uncompressed; no decompression step.
func (m *Mirror) FetchSeqres(savefile string) error {
	log.Infow("downloading sequence file", "dest", savefile)
	return m.remote.Download(m.layout.SeqresURL(), savefile)
}

func writeListFile(path string, ids []string) error {
	data := strings.Join(ids, "\n")
	if data != "" {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing listing file %s: %w", path, err)
	}
	return nil
}
