package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gota/gota/series"
)

// dateLayouts are tried in order when coercing date-like columns. Socrata
// floating timestamps come first.
var dateLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 03:04:05 PM",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// coercedLayout is the normalized representation written back into the frame.
const coercedLayout = "2006-01-02 15:04:05"

// IsDateColumn reports whether a column name looks date-like: it contains
// "date" or "time", case-insensitive. The heuristic matches the upstream
// analysis convention and is kept as-is, ambiguities included.
func IsDateColumn(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "date") || strings.Contains(lower, "time")
}

// CoerceDates attempts to parse every date-like column to datetimes and
// returns the updated dataset. Individual unparseable values become
// missing; a column that yields no parseable values at all is left
// untouched and reported in the returned warnings.
func CoerceDates(ds Dataset) (Dataset, []string) {
	var warnings []string

	for _, name := range ds.Frame.Names() {
		if !IsDateColumn(name) {
			continue
		}

		col := ds.Frame.Col(name)
		if col.Err != nil {
			continue
		}

		times := make([]time.Time, col.Len())
		parsed, present := 0, 0
		for i := 0; i < col.Len(); i++ {
			e := col.Elem(i)
			if isMissing(e) {
				continue
			}
			present++
			if t, ok := parseDate(e.String()); ok {
				times[i] = t
				parsed++
			}
		}

		if present > 0 && parsed == 0 {
			warnings = append(warnings, fmt.Sprintf("could not parse dates in column %s", name))
			continue
		}

		formatted := make([]string, len(times))
		for i, t := range times {
			if t.IsZero() {
				formatted[i] = "NaN"
			} else {
				formatted[i] = t.Format(coercedLayout)
			}
		}
		ds.Frame = ds.Frame.Mutate(series.New(formatted, series.String, name))

		if ds.times == nil {
			ds.times = make(map[string][]time.Time)
		}
		ds.times[name] = times
	}

	return ds, warnings
}

// parseDate tries each known layout against a single value.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
