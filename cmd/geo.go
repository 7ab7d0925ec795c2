package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/reub360/seattle-crime/internal/geodata"
)

var geoCmd = &cobra.Command{
	Use:   "geo <file>",
	Short: "Load a geospatial file and normalize its CRS",
	Long: `Loads a neighborhood or precinct boundary file (GeoJSON or shapefile),
reprojects it to the requested CRS if needed, and reports what was loaded.
Use --output to write the normalized features back out as GeoJSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		crs, _ := cmd.Flags().GetString("crs")
		output, _ := cmd.Flags().GetString("output")
		if crs == "" {
			crs = cfg.Geo.CRS
		}

		ds, err := geodata.Load(args[0], crs)
		if err != nil {
			return eris.Wrap(err, "geo")
		}

		fmt.Printf("Loaded %d features from %s (CRS: %s)\n", len(ds.Features), args[0], ds.CRS)

		if output != "" {
			if err := geodata.WriteGeoJSON(ds, output); err != nil {
				return eris.Wrap(err, "geo")
			}
			fmt.Printf("Normalized GeoJSON written to %s\n", output)
		}
		return nil
	},
}

func init() {
	geoCmd.Flags().String("crs", "", "target coordinate reference system (default: from config or EPSG:4326)")
	geoCmd.Flags().String("output", "", "write normalized features to this GeoJSON path")
	rootCmd.AddCommand(geoCmd)
}
