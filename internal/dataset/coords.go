package dataset

import (
	"math"

	"github.com/go-gota/gota/series"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// BoundsOptions names the coordinate columns and the inclusive geographic
// bounding box they must fall in.
type BoundsOptions struct {
	LatColumn string
	LonColumn string
	LatMin    float64
	LatMax    float64
	LonMin    float64
	LonMax    float64
}

// SeattleBounds returns the default bounding box covering Seattle city
// limits.
func SeattleBounds() BoundsOptions {
	return BoundsOptions{
		LatColumn: "latitude",
		LonColumn: "longitude",
		LatMin:    47.4,
		LatMax:    47.8,
		LonMin:    -122.5,
		LonMax:    -122.2,
	}
}

// ValidateCoordinates nulls the coordinates of every row whose latitude or
// longitude falls outside the bounding box. Both ends are inclusive, and a
// missing or non-numeric coordinate counts as out of bounds. Both
// coordinate values of an invalid row are cleared together so no row is
// left half-located. Rows inside the box are untouched.
func ValidateCoordinates(ds Dataset, opts BoundsOptions) (Dataset, error) {
	latCol := ds.Frame.Col(opts.LatColumn)
	if latCol.Err != nil {
		return ds, eris.Errorf("dataset: column %q not found", opts.LatColumn)
	}
	lonCol := ds.Frame.Col(opts.LonColumn)
	if lonCol.Err != nil {
		return ds, eris.Errorf("dataset: column %q not found", opts.LonColumn)
	}

	lat := latCol.Float()
	lon := lonCol.Float()

	invalid := 0
	for i := range lat {
		if !inBounds(lat[i], lon[i], opts) {
			lat[i] = math.NaN()
			lon[i] = math.NaN()
			invalid++
		}
	}

	if invalid == 0 {
		return ds, nil
	}

	zap.L().Warn("records with coordinates outside bounds set to missing",
		zap.Int("records", invalid),
		zap.String("lat_column", opts.LatColumn),
		zap.String("lon_column", opts.LonColumn),
	)

	ds.Frame = ds.Frame.
		Mutate(series.New(lat, series.Float, opts.LatColumn)).
		Mutate(series.New(lon, series.Float, opts.LonColumn))
	return ds, nil
}

func inBounds(lat, lon float64, opts BoundsOptions) bool {
	return lat >= opts.LatMin && lat <= opts.LatMax &&
		lon >= opts.LonMin && lon <= opts.LonMax
}
