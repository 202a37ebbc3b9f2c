package lib

import (
	"fmt"
	"strings"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/types"
)

// entriesIndexHeaderLines is the fixed header of entries.idx: a column
// banner and a separator line.
const entriesIndexHeaderLines = 2

// obsoleteMarker prefixes every data record in obsolete.dat.
const obsoleteMarker = "OBSLTE"

// LatestPeriod picks the most recent release period out of a status
// directory listing. Directory names are the last whitespace token of
// each line; only all-numeric names count, and the numerically largest
// one (which for fixed-width YYYYMMDD names is also the lexicographic
// maximum) wins.
func LatestPeriod(lines []string) (string, error) {
	latest := ""
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name := fields[len(fields)-1]
		if !allDigits(name) {
			continue
		}
		if name > latest {
			latest = name
		}
	}
	if latest == "" {
		return "", fmt.Errorf("status listing contains no numeric period directories")
	}
	return latest, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ParseStatusList reads a per-period status list (added.pdb and friends):
// one identifier per line. A token of the wrong width aborts the parse,
// since it most likely means the remote schema changed.
func ParseStatusList(source string, lines []string) ([]string, error) {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		id := strings.TrimSpace(line)
		if len(id) != 4 {
			return nil, &types.ListingError{Source: source, Line: line}
		}
		ids = append(ids, strings.ToLower(id))
	}
	return ids, nil
}

// ParseEntriesIndex extracts the identifier column from the global
// entries.idx file: after the two header lines, the first 4 characters
// of every line wide enough to carry one.
func ParseEntriesIndex(lines []string) []string {
	if len(lines) <= entriesIndexHeaderLines {
		return nil
	}
	var ids []string
	for _, line := range lines[entriesIndexHeaderLines:] {
		if len(line) > 4 {
			ids = append(ids, strings.ToLower(line[:4]))
		}
	}
	return ids
}

// ParseObsoleteIndex extracts identifiers from obsolete.dat. Only lines
// starting with the OBSLTE marker are records; their third whitespace
// token is the code and is width-checked like the status lists.
func ParseObsoleteIndex(lines []string) ([]string, error) {
	var ids []string
	for _, line := range lines {
		if !strings.HasPrefix(line, obsoleteMarker+" ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 || len(fields[2]) != 4 {
			return nil, &types.ListingError{Source: "obsolete.dat", Line: line}
		}
		ids = append(ids, strings.ToLower(fields[2]))
	}
	return ids, nil
}
