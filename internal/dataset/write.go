package dataset

import (
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/rotisserie/eris"
)

// WriteFile writes the dataset to a CSV file, creating parent directories
// as needed. The header row is written; no row index column is added.
func WriteFile(ds Dataset, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrapf(err, "dataset: create output dir %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "dataset: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	if err := ds.Frame.WriteCSV(f, dataframe.WriteHeader(true)); err != nil {
		return eris.Wrapf(err, "dataset: write csv %s", path)
	}
	return nil
}
