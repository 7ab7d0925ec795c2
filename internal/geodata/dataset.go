// Package geodata loads geospatial vector files (neighborhood and
// precinct boundaries) and normalizes their coordinate reference system.
package geodata

import "github.com/twpayne/go-geom"

// Feature is a single geometry with its attribute properties.
type Feature struct {
	ID         string
	Geometry   geom.T
	Properties map[string]any
}

// Dataset is a geometry-aware dataset. After Load, every feature geometry
// is expressed in CRS.
type Dataset struct {
	Features []*Feature
	CRS      string
}
