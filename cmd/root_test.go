package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"download", "inspect", "clean", "geo"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "seattle-crime", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestDownloadCommand_Flags(t *testing.T) {
	flag := downloadCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "download command should have --limit flag")
	assert.Equal(t, "0", flag.DefValue)

	flag = downloadCmd.Flags().Lookup("output")
	require.NotNil(t, flag, "download command should have --output flag")
	assert.Equal(t, "", flag.DefValue)
}

func TestInspectCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"no-parse-dates", "no-validate"} {
		flag := inspectCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "inspect should have --%s flag", flagName)
	}
}

func TestCleanCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"output", "lat-col", "lon-col"} {
		flag := cleanCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "clean should have --%s flag", flagName)
	}
}

func TestGeoCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"crs", "output"} {
		flag := geoCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "geo should have --%s flag", flagName)
	}
}
