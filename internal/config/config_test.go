package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://data.seattle.gov/resource/tazs-3rd5.csv", cfg.API.BaseURL)
	assert.Equal(t, 50000, cfg.API.Limit)
	assert.Equal(t, 60, cfg.API.TimeoutSecs)
	assert.Equal(t, 3, cfg.API.MaxRetries)
	assert.Equal(t, "seattle-crime/1.0", cfg.API.UserAgent)

	assert.Equal(t, "data/raw/spd_crime_data.csv", cfg.Data.RawPath)

	assert.True(t, cfg.Load.ParseDates)
	assert.True(t, cfg.Load.Validate)
	assert.InDelta(t, 50, cfg.Load.MissingThresholdPct, 1e-9)

	assert.Equal(t, "latitude", cfg.Bounds.LatColumn)
	assert.Equal(t, "longitude", cfg.Bounds.LonColumn)
	assert.InDelta(t, 47.4, cfg.Bounds.LatMin, 1e-9)
	assert.InDelta(t, 47.8, cfg.Bounds.LatMax, 1e-9)
	assert.InDelta(t, -122.5, cfg.Bounds.LonMin, 1e-9)
	assert.InDelta(t, -122.2, cfg.Bounds.LonMax, 1e-9)

	assert.Equal(t, "EPSG:4326", cfg.Geo.CRS)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SPD_API_LIMIT", "100")
	t.Setenv("SPD_DATA_RAW_PATH", "out/crime.csv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.API.Limit)
	assert.Equal(t, "out/crime.csv", cfg.Data.RawPath)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
}

func TestInitLogger_InvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "shouty", Format: "console"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
