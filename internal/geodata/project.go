package geodata

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// earthRadius is the WGS84 semi-major axis used by the spherical Mercator
// projection (EPSG:3857).
const earthRadius = 6378137.0

// Reproject transforms every feature geometry from ds.CRS to the target
// CRS and updates ds.CRS. Only the EPSG:4326 / EPSG:3857 pair is
// supported; spherical Mercator needs no external projection database.
func Reproject(ds *Dataset, target string) error {
	from := strings.ToUpper(ds.CRS)
	to := strings.ToUpper(target)
	if from == to {
		ds.CRS = target
		return nil
	}

	var fn func(x, y float64) (float64, float64)
	switch {
	case from == "EPSG:4326" && to == "EPSG:3857":
		fn = wgs84ToWebMercator
	case from == "EPSG:3857" && to == "EPSG:4326":
		fn = webMercatorToWGS84
	default:
		return eris.Errorf("geodata: unsupported reprojection %s -> %s", ds.CRS, target)
	}

	for _, f := range ds.Features {
		if f.Geometry == nil {
			continue
		}
		transformFlat(f.Geometry.FlatCoords(), f.Geometry.Stride(), fn)
	}

	zap.L().Info("reprojected dataset",
		zap.String("from", ds.CRS),
		zap.String("to", target),
		zap.Int("features", len(ds.Features)),
	)

	ds.CRS = target
	return nil
}

// transformFlat applies fn to every coordinate pair of a flat coordinate
// slice in place. Dimensions beyond X and Y pass through untouched.
func transformFlat(flat []float64, stride int, fn func(x, y float64) (float64, float64)) {
	if stride < 2 {
		return
	}
	for i := 0; i+1 < len(flat); i += stride {
		flat[i], flat[i+1] = fn(flat[i], flat[i+1])
	}
}

func wgs84ToWebMercator(lon, lat float64) (float64, float64) {
	x := earthRadius * lon * math.Pi / 180
	y := earthRadius * math.Log(math.Tan(math.Pi/4+lat*math.Pi/360))
	return x, y
}

func webMercatorToWGS84(x, y float64) (float64, float64) {
	lon := x / earthRadius * 180 / math.Pi
	lat := (2*math.Atan(math.Exp(y/earthRadius)) - math.Pi/2) * 180 / math.Pi
	return lon, lat
}
