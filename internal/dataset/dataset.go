// Package dataset loads SPD crime extracts into gota dataframes and runs
// the data-quality checks the downstream analysis relies on.
package dataset

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Dataset is a tabular crime-data extract. The frame holds every column as
// parsed by gota; columns coerced to datetimes are tracked in times because
// gota has no datetime series type.
type Dataset struct {
	Frame dataframe.DataFrame

	times map[string][]time.Time
}

// Options controls parsing and validation during load.
type Options struct {
	ParseDates          bool
	Validate            bool
	MissingThresholdPct float64
}

// DefaultOptions returns the standard load options.
func DefaultOptions() Options {
	return Options{ParseDates: true, Validate: true, MissingThresholdPct: 50}
}

// Load reads a local CSV file into a Dataset.
func Load(path string, opts Options) (Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return Dataset{}, eris.Wrapf(err, "dataset: data file not found: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	ds, err := Read(f, opts)
	if err != nil {
		return Dataset{}, eris.Wrapf(err, "dataset: load %s", path)
	}
	return ds, nil
}

// Read parses CSV content into a Dataset, applying the requested date
// coercion and validation. Validation never fails the load; each finding
// is logged as a warning.
func Read(r io.Reader, opts Options) (Dataset, error) {
	frame := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{"", "NA", "NaN", "null"}),
	)
	if frame.Err != nil {
		return Dataset{}, eris.Wrap(frame.Err, "dataset: parse csv")
	}

	ds := Dataset{Frame: frame}

	if opts.ParseDates {
		var warnings []string
		ds, warnings = CoerceDates(ds)
		for _, w := range warnings {
			zap.L().Warn(w)
		}
	}

	if opts.Validate {
		for _, w := range QualityWarnings(ds, opts.MissingThresholdPct) {
			zap.L().Warn(w)
		}
	}

	return ds, nil
}

// NumRows returns the number of data rows.
func (d Dataset) NumRows() int { return d.Frame.Nrow() }

// NumColumns returns the number of columns.
func (d Dataset) NumColumns() int { return d.Frame.Ncol() }

// Columns returns the column names in order.
func (d Dataset) Columns() []string { return d.Frame.Names() }

// DatetimeColumns returns the names of columns coerced to datetimes, in
// frame column order.
func (d Dataset) DatetimeColumns() []string {
	var cols []string
	for _, name := range d.Frame.Names() {
		if _, ok := d.times[name]; ok {
			cols = append(cols, name)
		}
	}
	return cols
}

// Times returns the coerced datetime values for a column. The zero time
// marks a missing or unparseable value.
func (d Dataset) Times(col string) ([]time.Time, bool) {
	ts, ok := d.times[col]
	return ts, ok
}

// isMissing reports whether a series element counts as a missing value.
// gota maps the configured NaN markers to NA, but string columns built by
// later mutations can still carry empty strings.
func isMissing(e series.Element) bool {
	if e.IsNA() {
		return true
	}
	return strings.TrimSpace(e.String()) == ""
}

// missingCount returns the number of missing values in a series.
func missingCount(s series.Series) int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		if isMissing(s.Elem(i)) {
			n++
		}
	}
	return n
}
