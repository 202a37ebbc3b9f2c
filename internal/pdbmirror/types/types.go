// Package types holds the shared value types for the pdbmirror application:
// the entry formats, the weekly change set, and the error taxonomy.
package types

import "fmt"

// Format identifies one of the archive's entry file formats.
type Format int

const (
	// FormatPDB is the legacy flat-file format, decompressed to pdb{id}.ent.
	FormatPDB Format = iota
	// FormatMMCIF is the structured-text format, decompressed to {id}.cif.
	FormatMMCIF
	// FormatBundle is the multi-file tar bundle used for entries too large
	// for the single-file formats.
	FormatBundle
)

// formatSpec declares, per format, how remote and local names are built.
// Keeping these declarative avoids duplicating path logic per format.
type formatSpec struct {
	name string
	// Remote sub-path below the server base, current vs. obsolete tree.
	// The bundle format has no obsolete variant on the server.
	currentPath  string
	obsoletePath string
	// archivePrefix/Suffix bracket the identifier in the compressed
	// artifact name; finalSuffix names the decompressed output.
	archivePrefix string
	archiveSuffix string
	finalSuffix   string
	// Bundles nest one directory deeper on the server: partition/{id}/file.
	extraIDSegment bool
}

var formatSpecs = map[Format]formatSpec{
	FormatPDB: {
		name:          "pdb",
		currentPath:   "pub/pdb/data/structures/divided/pdb",
		obsoletePath:  "pub/pdb/data/structures/obsolete/pdb",
		archivePrefix: "pdb",
		archiveSuffix: ".ent.gz",
		finalSuffix:   ".ent",
	},
	FormatMMCIF: {
		name:          "cif",
		currentPath:   "pub/pdb/data/structures/divided/mmCIF",
		obsoletePath:  "pub/pdb/data/structures/obsolete/mmCIF",
		archiveSuffix: ".cif.gz",
		finalSuffix:   ".cif",
	},
	FormatBundle: {
		name:           "bundle",
		currentPath:    "pub/pdb/compatible/pdb_bundle",
		obsoletePath:   "pub/pdb/compatible/pdb_bundle",
		archiveSuffix:  "-bundle.tar.gz",
		finalSuffix:    "-bundle.tar",
		extraIDSegment: true,
	},
}

// ParseFormat maps a CLI format name to a Format.
func ParseFormat(s string) (Format, error) {
	for f, spec := range formatSpecs {
		if spec.name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format %q (want pdb, cif or bundle)", s)
}

// String returns the CLI name of the format.
func (f Format) String() string {
	return formatSpecs[f].name
}

// RemotePath returns the server sub-path holding this format's archives.
func (f Format) RemotePath(obsolete bool) string {
	if obsolete {
		return formatSpecs[f].obsoletePath
	}
	return formatSpecs[f].currentPath
}

// ArchiveName returns the compressed artifact name for an identifier.
func (f Format) ArchiveName(id string) string {
	spec := formatSpecs[f]
	return spec.archivePrefix + id + spec.archiveSuffix
}

// FinalName returns the decompressed output filename for an identifier.
func (f Format) FinalName(id string) string {
	spec := formatSpecs[f]
	return spec.archivePrefix + id + spec.finalSuffix
}

// NestsByID reports whether the remote layout inserts an {id} directory
// between the partition segment and the archive name.
func (f Format) NestsByID() bool {
	return formatSpecs[f].extraIDSegment
}

// ChangeSet is the weekly status triple: identifiers added to, modified
// in, and obsoleted from the archive during one release period.
type ChangeSet struct {
	Period   string
	Added    []string
	Modified []string
	Obsolete []string
}

// InvalidIDError reports an identifier that cannot name an archive entry.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid entry identifier %q: must be exactly 4 characters", e.ID)
}

// RemoteError reports a failed remote operation. NotFound distinguishes a
// missing resource from an unreachable server so batch callers can decide
// how loudly to complain.
type RemoteError struct {
	URL      string
	NotFound bool
	Err      error
}

func (e *RemoteError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("remote resource not found: %s", e.URL)
	}
	return fmt.Sprintf("remote fetch of %s failed: %v", e.URL, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// ListingError reports a malformed record in a remote listing. A wrong
// token width most likely means the remote schema changed, so the parse
// is aborted rather than silently filtered.
type ListingError struct {
	Source string
	Line   string
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("malformed %s listing line %q: expected a 4-character identifier", e.Source, e.Line)
}
