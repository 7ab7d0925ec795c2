package geodata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// DefaultCRS is the CRS geographic datasets are normalized to.
const DefaultCRS = "EPSG:4326"

// Load reads a geospatial vector file and normalizes it to the requested
// CRS. GeoJSON and shapefiles are supported. A dataset without CRS
// metadata is tagged with the requested CRS as-is; a dataset in a
// different CRS is reprojected.
func Load(path string, crs string) (*Dataset, error) {
	if crs == "" {
		crs = DefaultCRS
	}
	if _, err := os.Stat(path); err != nil {
		return nil, eris.Wrapf(err, "geodata: file not found: %s", path)
	}

	var (
		ds  *Dataset
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		ds, err = loadGeoJSON(path)
	case ".shp":
		ds, err = loadShapefile(path)
	default:
		return nil, eris.Errorf("geodata: unsupported file format: %s", path)
	}
	if err != nil {
		return nil, err
	}

	if err := normalizeCRS(ds, crs); err != nil {
		return nil, err
	}
	return ds, nil
}

// normalizeCRS guarantees ds.CRS == target on return. A dataset already in
// the target CRS is left untouched so repeated loads stay bit-identical.
func normalizeCRS(ds *Dataset, target string) error {
	switch {
	case ds.CRS == "":
		ds.CRS = target
	case strings.EqualFold(ds.CRS, target):
		ds.CRS = target
	default:
		return Reproject(ds, target)
	}
	return nil
}

// legacyCRS matches the deprecated GeoJSON 2008 crs member still emitted
// by some municipal portals.
type legacyCRS struct {
	CRS *struct {
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
	} `json:"crs"`
}

func loadGeoJSON(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "geodata: read %s", path)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, eris.Wrapf(err, "geodata: parse geojson %s", path)
	}

	ds := &Dataset{}
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		ds.Features = append(ds.Features, &Feature{
			ID:         f.ID,
			Geometry:   f.Geometry,
			Properties: f.Properties,
		})
	}

	var legacy legacyCRS
	if err := json.Unmarshal(data, &legacy); err == nil && legacy.CRS != nil {
		ds.CRS = parseCRSName(legacy.CRS.Properties.Name)
	}

	return ds, nil
}

// parseCRSName maps a legacy crs name like "urn:ogc:def:crs:EPSG::3857" or
// "EPSG:3857" to the EPSG:<code> form. Unrecognized names map to the empty
// string so the loader falls back to assigning the requested CRS.
func parseCRSName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.EqualFold(name, "urn:ogc:def:crs:OGC:1.3:CRS84") {
		return "EPSG:4326"
	}

	upper := strings.ToUpper(name)
	if idx := strings.Index(upper, "EPSG"); idx >= 0 {
		code := strings.Trim(upper[idx+len("EPSG"):], ":")
		if code != "" {
			return "EPSG:" + code
		}
	}
	return ""
}

// WriteGeoJSON writes the dataset as a GeoJSON FeatureCollection, creating
// parent directories as needed.
func WriteGeoJSON(ds *Dataset, path string) error {
	fc := geojson.FeatureCollection{}
	for _, f := range ds.Features {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         f.ID,
			Geometry:   f.Geometry,
			Properties: f.Properties,
		})
	}

	data, err := json.Marshal(&fc)
	if err != nil {
		return eris.Wrap(err, "geodata: marshal geojson")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrapf(err, "geodata: create output dir %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "geodata: write %s", path)
	}
	return nil
}
