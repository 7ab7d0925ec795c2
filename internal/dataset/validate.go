package dataset

import (
	"fmt"
	"strings"
)

// QualityWarnings runs the heuristic data-quality checks and returns one
// human-readable warning per failed check. The checks are independent and
// advisory: coordinate column presence, date column presence, and
// per-column missing-value ratio against the threshold percentage.
func QualityWarnings(ds Dataset, missingThresholdPct float64) []string {
	var warnings []string

	coordCols := 0
	for _, name := range ds.Columns() {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "lat") || strings.Contains(lower, "lon") {
			coordCols++
		}
	}
	if coordCols < 2 {
		warnings = append(warnings, "missing coordinate columns; spatial analysis may not be possible")
	}

	hasDate := false
	for _, name := range ds.Columns() {
		if IsDateColumn(name) {
			hasDate = true
			break
		}
	}
	if !hasDate {
		warnings = append(warnings, "no date/time columns found; temporal analysis may not be possible")
	}

	rows := ds.NumRows()
	var critical []string
	if rows > 0 {
		for _, name := range ds.Columns() {
			col := ds.Frame.Col(name)
			pct := float64(missingCount(col)) / float64(rows) * 100
			if pct > missingThresholdPct {
				critical = append(critical, name)
			}
		}
	}
	if len(critical) > 0 {
		warnings = append(warnings, fmt.Sprintf("columns with >%.0f%% missing data: %s",
			missingThresholdPct, strings.Join(critical, ", ")))
	}

	return warnings
}
