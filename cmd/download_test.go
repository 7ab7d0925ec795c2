package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reub360/seattle-crime/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		API: config.APIConfig{
			BaseURL:     baseURL,
			Limit:       50000,
			TimeoutSecs: 5,
			MaxRetries:  1,
			UserAgent:   "seattle-crime/1.0",
		},
		Data: config.DataConfig{RawPath: "data/raw/spd_crime_data.csv"},
		Load: config.LoadConfig{ParseDates: true, Validate: true, MissingThresholdPct: 50},
		Geo:  config.GeoConfig{CRS: "EPSG:4326"},
	}
}

func TestRunDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("$limit"))
		_, _ = w.Write([]byte("report_number,offense_date,latitude,longitude\n1,2020-01-01T00:00:00.000,47.6,-122.3\n"))
	}))
	defer srv.Close()

	cfg = testConfig(srv.URL)
	output := filepath.Join(t.TempDir(), "raw", "crime.csv")

	require.NoError(t, runDownload(context.Background(), 25, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "report_number")
	assert.Contains(t, string(data), "47.6")
}

func TestRunDownload_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg = testConfig(srv.URL)
	output := filepath.Join(t.TempDir(), "crime.csv")

	err := runDownload(context.Background(), 10, output)
	require.Error(t, err)
	assert.NoFileExists(t, output)
}

func TestRunDownload_InvalidLimit(t *testing.T) {
	cfg = testConfig("http://127.0.0.1:1")

	err := runDownload(context.Background(), -1, filepath.Join(t.TempDir(), "crime.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit must be positive")
}
