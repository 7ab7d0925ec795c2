package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/reub360/seattle-crime/internal/dataset"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Null out coordinates outside the Seattle bounding box",
	Long: `Loads a crime data extract, nulls the coordinates of every record
falling outside the configured city bounds, and writes the cleaned CSV.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		latCol, _ := cmd.Flags().GetString("lat-col")
		lonCol, _ := cmd.Flags().GetString("lon-col")
		if output == "" {
			output = derivedCleanPath(args[0])
		}

		opts := dataset.DefaultOptions()
		if cfg.Load.MissingThresholdPct > 0 {
			opts.MissingThresholdPct = cfg.Load.MissingThresholdPct
		}

		ds, err := dataset.Load(args[0], opts)
		if err != nil {
			return eris.Wrap(err, "clean")
		}

		bounds := boundsFromConfig()
		if latCol != "" {
			bounds.LatColumn = latCol
		}
		if lonCol != "" {
			bounds.LonColumn = lonCol
		}

		ds, err = dataset.ValidateCoordinates(ds, bounds)
		if err != nil {
			return eris.Wrap(err, "clean")
		}

		if err := dataset.WriteFile(ds, output); err != nil {
			return eris.Wrap(err, "clean")
		}

		fmt.Printf("Cleaned data written to %s\n", output)
		return nil
	},
}

func init() {
	cleanCmd.Flags().String("output", "", "output file path (default: <input>_clean.csv)")
	cleanCmd.Flags().String("lat-col", "", "latitude column name (default: from config)")
	cleanCmd.Flags().String("lon-col", "", "longitude column name (default: from config)")
	rootCmd.AddCommand(cleanCmd)
}

// boundsFromConfig maps the configured bounding box onto BoundsOptions,
// falling back to the Seattle defaults for anything unset.
func boundsFromConfig() dataset.BoundsOptions {
	b := dataset.SeattleBounds()
	if cfg == nil {
		return b
	}
	if cfg.Bounds.LatColumn != "" {
		b.LatColumn = cfg.Bounds.LatColumn
	}
	if cfg.Bounds.LonColumn != "" {
		b.LonColumn = cfg.Bounds.LonColumn
	}
	if cfg.Bounds.LatMin != 0 || cfg.Bounds.LatMax != 0 {
		b.LatMin, b.LatMax = cfg.Bounds.LatMin, cfg.Bounds.LatMax
	}
	if cfg.Bounds.LonMin != 0 || cfg.Bounds.LonMax != 0 {
		b.LonMin, b.LonMax = cfg.Bounds.LonMin, cfg.Bounds.LonMax
	}
	return b
}

// derivedCleanPath appends _clean before the file extension.
func derivedCleanPath(path string) string {
	if idx := strings.LastIndex(path, "."); idx > 0 {
		return path[:idx] + "_clean" + path[idx:]
	}
	return path + "_clean"
}
