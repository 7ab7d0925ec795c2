package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	ds := readTestData(t, "a,b\n1,2\n3,4\n")

	path := filepath.Join(t.TempDir(), "data", "raw", "out.csv")
	require.NoError(t, WriteFile(ds, path))

	reloaded, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.NumRows())
	assert.Equal(t, []string{"a", "b"}, reloaded.Columns())
}

func TestWriteFile_HeaderNoIndex(t *testing.T) {
	ds := readTestData(t, "a,b\n1,2\n")

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFile(ds, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a,b", lines[0])
	assert.Equal(t, "1,2", lines[1])
}
