package geodata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestWGS84ToWebMercator(t *testing.T) {
	x, y := wgs84ToWebMercator(0, 0)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)

	x, _ = wgs84ToWebMercator(180, 0)
	assert.InDelta(t, 20037508.34, x, 0.01)

	// Seattle city center.
	x, y = wgs84ToWebMercator(-122.33, 47.61)
	assert.InDelta(t, -13617630.0, x, 100)
	assert.InDelta(t, 6044309.0, y, 100)
}

func TestReproject_RoundTrip(t *testing.T) {
	ds := &Dataset{
		CRS: "EPSG:4326",
		Features: []*Feature{
			{Geometry: geom.NewPointFlat(geom.XY, []float64{-122.33, 47.61})},
			{Geometry: geom.NewLineStringFlat(geom.XY, []float64{-122.5, 47.4, -122.2, 47.8})},
		},
	}

	require.NoError(t, Reproject(ds, "EPSG:3857"))
	assert.Equal(t, "EPSG:3857", ds.CRS)

	require.NoError(t, Reproject(ds, "EPSG:4326"))
	assert.Equal(t, "EPSG:4326", ds.CRS)

	pt := ds.Features[0].Geometry.FlatCoords()
	assert.InDelta(t, -122.33, pt[0], 1e-9)
	assert.InDelta(t, 47.61, pt[1], 1e-9)

	line := ds.Features[1].Geometry.FlatCoords()
	assert.InDelta(t, -122.5, line[0], 1e-9)
	assert.InDelta(t, 47.4, line[1], 1e-9)
	assert.InDelta(t, -122.2, line[2], 1e-9)
	assert.InDelta(t, 47.8, line[3], 1e-9)
}

func TestReproject_SameCRSIsNoOp(t *testing.T) {
	ds := &Dataset{
		CRS: "epsg:4326",
		Features: []*Feature{
			{Geometry: geom.NewPointFlat(geom.XY, []float64{-122.33, 47.61})},
		},
	}

	require.NoError(t, Reproject(ds, "EPSG:4326"))
	assert.Equal(t, "EPSG:4326", ds.CRS)
	assert.Equal(t, []float64{-122.33, 47.61}, ds.Features[0].Geometry.FlatCoords())
}

func TestReproject_Unsupported(t *testing.T) {
	ds := &Dataset{CRS: "EPSG:2926"}
	err := Reproject(ds, "EPSG:4326")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported reprojection")
}

func TestReproject_SkipsNilGeometry(t *testing.T) {
	ds := &Dataset{
		CRS:      "EPSG:4326",
		Features: []*Feature{{Geometry: nil}},
	}
	require.NoError(t, Reproject(ds, "EPSG:3857"))
	assert.Equal(t, "EPSG:3857", ds.CRS)
}

func TestTransformFlat_PreservesExtraDimensions(t *testing.T) {
	// XYZ coordinates: Z passes through untouched.
	flat := []float64{10, 20, 99, 30, 40, 88}
	transformFlat(flat, 3, func(x, y float64) (float64, float64) {
		return x + 1, y + 1
	})

	assert.Equal(t, []float64{11, 21, 99, 31, 41, 88}, flat)
}
