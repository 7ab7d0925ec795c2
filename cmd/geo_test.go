package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoCommand_Run(t *testing.T) {
	cfg = testConfig("")

	input := filepath.Join(t.TempDir(), "boundaries.geojson")
	geojson := `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"Ballard"},"geometry":{"type":"Point","coordinates":[-122.38,47.67]}}]}`
	require.NoError(t, os.WriteFile(input, []byte(geojson), 0o644))

	require.NoError(t, geoCmd.RunE(geoCmd, []string{input}))
}

func TestGeoCommand_FileNotFound(t *testing.T) {
	cfg = testConfig("")

	err := geoCmd.RunE(geoCmd, []string{filepath.Join(t.TempDir(), "missing.geojson")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geo")
}
