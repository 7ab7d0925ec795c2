package geodata

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// loadShapefile reads a shapefile and its attribute table. The CRS is
// sniffed from the .prj sidecar when present.
func loadShapefile(path string) (*Dataset, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "geodata: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	fields := reader.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = strings.TrimRight(f.String(), "\x00")
	}

	ds := &Dataset{CRS: sniffPRJ(path)}
	var skipped int

	for reader.Next() {
		n, shape := reader.Shape()

		g := shapeToGeom(shape)
		if g == nil {
			skipped++
			continue
		}

		props := make(map[string]any, len(names))
		for i, name := range names {
			val := strings.TrimSpace(strings.TrimRight(reader.Attribute(i), "\x00"))
			if val == "" {
				continue
			}
			props[name] = val
		}

		ds.Features = append(ds.Features, &Feature{
			ID:         strconv.Itoa(n),
			Geometry:   g,
			Properties: props,
		})
	}

	if skipped > 0 {
		zap.L().Debug("skipped shapefile records without usable geometry",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}

	return ds, nil
}

// sniffPRJ inspects the .prj sidecar for a recognizable CRS. Full WKT
// parsing is out of scope; only the CRS this tool can transform between
// are matched by name. The Mercator check runs first because its WKT also
// mentions WGS 1984.
func sniffPRJ(shpPath string) string {
	prj := strings.TrimSuffix(shpPath, filepath.Ext(shpPath)) + ".prj"
	data, err := os.ReadFile(prj)
	if err != nil {
		return ""
	}

	wkt := strings.ToUpper(string(data))
	switch {
	case strings.Contains(wkt, "PSEUDO-MERCATOR") || strings.Contains(wkt, "3857"):
		return "EPSG:3857"
	case strings.Contains(wkt, "WGS_1984") || strings.Contains(wkt, "WGS 84") || strings.Contains(wkt, "4326"):
		return "EPSG:4326"
	default:
		return ""
	}
}
