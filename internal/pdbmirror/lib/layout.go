// Package lib contains the core, reusable services for the pdbmirror
// application: the local tree layout, the remote client, decompression,
// listing parsers, and the mirror manager that ties them together.
package lib

import (
	"path/filepath"
	"strings"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/types"
)

// DefaultServer is the archive consulted when no --server flag is given.
const DefaultServer = "https://files.wwpdb.org"

// ObsoleteDirName is the default obsolete-tree directory below the
// current-tree root when no explicit obsolete root is configured.
const ObsoleteDirName = "obsolete"

// Layout is the immutable mirror configuration. It is constructed once
// per invocation and only read afterwards.
type Layout struct {
	// ServerURL is the remote archive base, without a trailing slash.
	ServerURL string
	// CurrentRoot holds non-obsolete entries.
	CurrentRoot string
	// ObsoleteRoot holds superseded entries. Defaults to
	// CurrentRoot/obsolete when left empty.
	ObsoleteRoot string
	// Flat disables the two-character partition nesting.
	Flat bool
	// Overwrite forces a download even when the target already exists.
	Overwrite bool
}

// NewLayout fills in the layout defaults.
func NewLayout(server, currentRoot string) Layout {
	if server == "" {
		server = DefaultServer
	}
	l := Layout{
		ServerURL:    strings.TrimRight(server, "/"),
		CurrentRoot:  currentRoot,
		ObsoleteRoot: filepath.Join(currentRoot, ObsoleteDirName),
	}
	return l
}

// NormalizeID lowercases an identifier and validates its width. Every
// operation that accepts a single identifier calls this before any path
// or network work.
func NormalizeID(id string) (string, error) {
	if len(id) != 4 {
		return "", &types.InvalidIDError{ID: id}
	}
	return strings.ToLower(id), nil
}

// Partition returns the two-character fan-out segment for an identifier,
// positions 2-3 of the (already validated) code.
func Partition(id string) string {
	return id[1:3]
}

// EntryDir computes the local destination directory for one entry. An
// override directory wins outright; otherwise the current or obsolete
// root applies, nested under the partition segment unless the layout is
// flat.
func (l Layout) EntryDir(id string, obsolete bool, overrideDir string) string {
	if overrideDir != "" {
		return overrideDir
	}
	root := l.CurrentRoot
	if obsolete {
		root = l.ObsoleteRoot
	}
	if l.Flat {
		return root
	}
	return filepath.Join(root, Partition(id))
}

// FinalPath computes the decompressed target file for one entry.
func (l Layout) FinalPath(id string, format types.Format, obsolete bool, overrideDir string) string {
	return filepath.Join(l.EntryDir(id, obsolete, overrideDir), format.FinalName(id))
}

// RemoteURL computes the archive URL for one entry.
func (l Layout) RemoteURL(id string, format types.Format, obsolete bool) string {
	parts := []string{l.ServerURL, format.RemotePath(obsolete), Partition(id)}
	if format.NestsByID() {
		parts = append(parts, id)
	}
	parts = append(parts, format.ArchiveName(id))
	return strings.Join(parts, "/")
}

// StatusURL returns the weekly status directory on the server.
func (l Layout) StatusURL() string {
	return l.ServerURL + "/pub/pdb/data/status/"
}

// PeriodURL returns the listing directory for one release period.
func (l Layout) PeriodURL(period string) string {
	return l.StatusURL() + period + "/"
}

// EntriesIndexURL returns the global all-entries index file.
func (l Layout) EntriesIndexURL() string {
	return l.ServerURL + "/pub/pdb/derived_data/index/entries.idx"
}

// ObsoleteIndexURL returns the global historically-obsolete listing.
func (l Layout) ObsoleteIndexURL() string {
	return l.ServerURL + "/pub/pdb/data/status/obsolete.dat"
}

// SeqresURL returns the full sequence file for all current entries.
func (l Layout) SeqresURL() string {
	return l.ServerURL + "/pub/pdb/derived_data/pdb_seqres.txt"
}
