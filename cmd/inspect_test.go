package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectCommand_Run(t *testing.T) {
	cfg = testConfig("")

	input := filepath.Join(t.TempDir(), "crime.csv")
	csv := "report_number,offense_date,latitude,longitude\n1,2020-01-01,47.6,-122.3\n"
	require.NoError(t, os.WriteFile(input, []byte(csv), 0o644))

	require.NoError(t, inspectCmd.RunE(inspectCmd, []string{input}))
}

func TestInspectCommand_FileNotFound(t *testing.T) {
	cfg = testConfig("")

	err := inspectCmd.RunE(inspectCmd, []string{filepath.Join(t.TempDir(), "missing.csv")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inspect")
}
