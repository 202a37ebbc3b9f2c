package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/types"
)

func TestLatestPeriod(t *testing.T) {
	// The status directory mixes period directories with a README; only
	// all-numeric names count and the largest one wins.
	lines := []string{
		"drwxrwxr-x   2 1002     sysadmin     512 Oct  6 18:28 20031006",
		"drwxrwxr-x   2 1002     sysadmin     512 Oct 14 02:14 20031013",
		"-rw-r--r--   1 1002     sysadmin    1327 Mar 12  2001 README",
	}
	period, err := LatestPeriod(lines)
	require.NoError(t, err)
	assert.Equal(t, "20031013", period)
}

func TestLatestPeriodOrderIndependent(t *testing.T) {
	period, err := LatestPeriod([]string{"20031013", "20031006"})
	require.NoError(t, err)
	assert.Equal(t, "20031013", period)
}

func TestLatestPeriodNoNumericNames(t *testing.T) {
	_, err := LatestPeriod([]string{"README", "notes.txt"})
	assert.Error(t, err)
}

func TestParseStatusList(t *testing.T) {
	ids, err := ParseStatusList("added.pdb", []string{"1ABC", "2def "})
	require.NoError(t, err)
	assert.Equal(t, []string{"1abc", "2def"}, ids)
}

func TestParseStatusListMalformedTokenAborts(t *testing.T) {
	// A wrong-width token means the remote schema changed; the whole
	// parse fails rather than silently dropping the record.
	_, err := ParseStatusList("added.pdb", []string{"1abc", "2defg"})
	require.Error(t, err)
	var listing *types.ListingError
	assert.ErrorAs(t, err, &listing)
}

func TestParseEntriesIndex(t *testing.T) {
	lines := []string{
		"IDCODE  HEADER                    DATE",
		"------- ------------------------- ---------",
		"100D    DNA/RNA HYBRID            05-DEC-94",
		"101M    OXYGEN STORAGE/TRANSPORT  13-DEC-97",
		"1ab",
	}
	ids := ParseEntriesIndex(lines)
	// The short trailing line carries no identifier and is not a record.
	assert.Equal(t, []string{"100d", "101m"}, ids)
}

func TestParseEntriesIndexHeaderOnly(t *testing.T) {
	assert.Empty(t, ParseEntriesIndex([]string{"IDCODE", "-------"}))
}

func TestParseObsoleteIndex(t *testing.T) {
	lines := []string{
		" LIST OF OBSOLETE COORDINATE ENTRIES AND SUCCESSORS",
		"OBSLTE    31-JUL-94 116L     216L",
		"OBSLTE    18-JUL-84 1HHB     2HHB 3HHB",
		"OBSLTE    21-NOV-03 1HG6",
	}
	ids, err := ParseObsoleteIndex(lines)
	require.NoError(t, err)
	assert.Equal(t, []string{"116l", "1hhb", "1hg6"}, ids)
}

func TestParseObsoleteIndexMalformedAborts(t *testing.T) {
	_, err := ParseObsoleteIndex([]string{"OBSLTE    31-JUL-94 116LX    216L"})
	require.Error(t, err)
	var listing *types.ListingError
	assert.ErrorAs(t, err, &listing)
}
