package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAllowedExtension(t *testing.T) {
	assert.True(t, HasAllowedExtension("report.xlsx"))
	assert.True(t, HasAllowedExtension("old-format.xls"))
	assert.True(t, HasAllowedExtension("data.csv"))
	assert.True(t, HasAllowedExtension("SHOUTING.CSV"))
	assert.True(t, HasAllowedExtension("/some/dir/report.xlsx"))

	assert.False(t, HasAllowedExtension("notes.txt"))
	assert.False(t, HasAllowedExtension("presentation.pdf"))
	assert.False(t, HasAllowedExtension("csv"))
	assert.False(t, HasAllowedExtension(""))
}

func TestSplitUploadPaths(t *testing.T) {
	accepted, skipped := SplitUploadPaths([]string{
		"a.xlsx", "b.txt", "", "c.csv", "d.exe",
	})
	assert.Equal(t, []string{"a.xlsx", "c.csv"}, accepted)
	assert.Equal(t, 2, skipped)

	accepted, skipped = SplitUploadPaths(nil)
	assert.Empty(t, accepted)
	assert.Zero(t, skipped)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/docs/report.xlsx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "docs/report.xlsx"), expanded)

	unchanged, err := ExpandPath("/absolute/path.csv")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path.csv", unchanged)
}
