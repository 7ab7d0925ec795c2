package dataset

import (
	"strings"
	"time"

	"github.com/go-gota/gota/series"
)

// Info summarizes a loaded dataset. DateRangeStart and DateRangeEnd are
// nil unless at least one column was coerced to datetimes.
type Info struct {
	Records            int
	Columns            int
	MemoryBytes        int64
	Duplicates         int
	MissingValues      int
	ColumnsWithMissing int
	DateRangeStart     *time.Time
	DateRangeEnd       *time.Time
}

// MemoryMB returns the estimated in-memory size in megabytes.
func (i Info) MemoryMB() float64 {
	return float64(i.MemoryBytes) / (1 << 20)
}

// Summarize computes summary statistics for a dataset. It is read-only.
func Summarize(ds Dataset) Info {
	info := Info{
		Records: ds.NumRows(),
		Columns: ds.NumColumns(),
	}

	for _, name := range ds.Columns() {
		col := ds.Frame.Col(name)
		info.MemoryBytes += estimateSeriesBytes(col)
		if n := missingCount(col); n > 0 {
			info.MissingValues += n
			info.ColumnsWithMissing++
		}
	}

	info.Duplicates = duplicateRows(ds)

	if cols := ds.DatetimeColumns(); len(cols) > 0 {
		info.DateRangeStart, info.DateRangeEnd = timeRange(ds, cols[0])
	}

	return info
}

// estimateSeriesBytes approximates the in-memory footprint of a series.
func estimateSeriesBytes(s series.Series) int64 {
	const elemOverhead = 16

	switch s.Type() {
	case series.Int, series.Float:
		return int64(s.Len()) * 8
	case series.Bool:
		return int64(s.Len())
	default:
		var total int64
		for _, v := range s.Records() {
			total += int64(len(v)) + elemOverhead
		}
		return total
	}
}

// duplicateRows counts exact duplicate rows, excluding each first
// occurrence.
func duplicateRows(ds Dataset) int {
	records := ds.Frame.Records()
	if len(records) <= 1 {
		return 0
	}

	seen := make(map[string]bool, len(records)-1)
	dups := 0
	for _, row := range records[1:] {
		key := strings.Join(row, "\x1f")
		if seen[key] {
			dups++
		}
		seen[key] = true
	}
	return dups
}

// timeRange returns the min and max of a coerced datetime column, ignoring
// missing values.
func timeRange(ds Dataset, col string) (*time.Time, *time.Time) {
	times, ok := ds.Times(col)
	if !ok {
		return nil, nil
	}

	var start, end *time.Time
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		if start == nil || t.Before(*start) {
			tc := t
			start = &tc
		}
		if end == nil || t.After(*end) {
			tc := t
			end = &tc
		}
	}
	return start, end
}
