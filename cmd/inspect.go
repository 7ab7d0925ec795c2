package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/reub360/seattle-crime/internal/dataset"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Load a crime data CSV and print its summary",
	Long: `Loads a local crime data extract, coerces date columns, runs the
data-quality checks, and prints the dataset info summary.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noDates, _ := cmd.Flags().GetBool("no-parse-dates")
		noValidate, _ := cmd.Flags().GetBool("no-validate")

		opts := dataset.DefaultOptions()
		opts.ParseDates = !noDates
		opts.Validate = !noValidate
		if cfg.Load.MissingThresholdPct > 0 {
			opts.MissingThresholdPct = cfg.Load.MissingThresholdPct
		}

		ds, err := dataset.Load(args[0], opts)
		if err != nil {
			return eris.Wrap(err, "inspect")
		}

		printInfo(args[0], dataset.Summarize(ds))
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("no-parse-dates", false, "skip date column coercion")
	inspectCmd.Flags().Bool("no-validate", false, "skip data-quality checks")
	rootCmd.AddCommand(inspectCmd)
}

func printInfo(path string, info dataset.Info) {
	fmt.Printf("Dataset: %s\n", path)
	fmt.Printf("  Records:              %d\n", info.Records)
	fmt.Printf("  Columns:              %d\n", info.Columns)
	fmt.Printf("  Memory (est.):        %.2f MB\n", info.MemoryMB())
	fmt.Printf("  Duplicate rows:       %d\n", info.Duplicates)
	fmt.Printf("  Missing values:       %d\n", info.MissingValues)
	fmt.Printf("  Columns with missing: %d\n", info.ColumnsWithMissing)
	if info.DateRangeStart != nil && info.DateRangeEnd != nil {
		fmt.Printf("  Date range:           %s - %s\n",
			info.DateRangeStart.Format("2006-01-02"),
			info.DateRangeEnd.Format("2006-01-02"))
	}
}
