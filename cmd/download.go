package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/reub360/seattle-crime/internal/dataset"
	"github.com/reub360/seattle-crime/internal/fetcher"
	"github.com/reub360/seattle-crime/internal/socrata"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download SPD crime data from the Seattle Open Data Portal",
	Long: `Fetches the SPD Crime Data (2008-Present) CSV resource through the
Socrata SODA API and writes it under data/raw/ for the analysis notebooks.
For the full dataset, consider downloading manually from the portal.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		limit, _ := cmd.Flags().GetInt("limit")
		output, _ := cmd.Flags().GetString("output")
		if limit == 0 {
			limit = cfg.API.Limit
		}
		if output == "" {
			output = cfg.Data.RawPath
		}

		if err := runDownload(ctx, limit, output); err != nil {
			printTroubleshooting(limit)
			return eris.Wrap(err, "download")
		}
		return nil
	},
}

func init() {
	downloadCmd.Flags().Int("limit", 0, "maximum number of records to download (default: from config or 50000)")
	downloadCmd.Flags().String("output", "", "output file path (default: from config or data/raw/spd_crime_data.csv)")
	rootCmd.AddCommand(downloadCmd)
}

// runDownload fetches the dataset, writes it to disk, and prints the
// download report.
func runDownload(ctx context.Context, limit int, output string) error {
	printBanner(limit, output)

	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  cfg.API.UserAgent,
		Timeout:    time.Duration(cfg.API.TimeoutSecs) * time.Second,
		MaxRetries: cfg.API.MaxRetries,
	})
	client := socrata.NewClient(f, cfg.API.BaseURL)

	ds, err := client.FetchDataset(ctx, limit)
	if err != nil {
		return err
	}

	info := dataset.Summarize(ds)
	fmt.Println("Download successful!")
	fmt.Println("\nDataset Summary:")
	fmt.Printf("  - Records downloaded: %d\n", info.Records)
	fmt.Printf("  - Columns: %d\n", info.Columns)
	fmt.Printf("  - Memory size: %.2f MB\n", info.MemoryMB())

	fmt.Printf("\nSaving to: %s\n", output)
	if err := dataset.WriteFile(ds, output); err != nil {
		return err
	}
	fmt.Println("Data saved successfully!")

	fmt.Println("\nColumns in dataset:")
	for i, col := range ds.Columns() {
		fmt.Printf("  %2d. %s\n", i+1, col)
	}

	if info.DateRangeStart != nil && info.DateRangeEnd != nil {
		fmt.Println("\nDate Range:")
		fmt.Printf("  - Start: %s\n", info.DateRangeStart.Format("2006-01-02 15:04:05"))
		fmt.Printf("  - End:   %s\n", info.DateRangeEnd.Format("2006-01-02 15:04:05"))
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("Download Complete!")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nNext Steps:")
	fmt.Println("  1. Review the data: data/README.md")
	fmt.Println("  2. Inspect the extract: seattle-crime inspect " + output)
	fmt.Println("  3. Clip coordinates to city bounds: seattle-crime clean " + output)

	return nil
}

func printBanner(limit int, output string) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Seattle Crime Data Downloader")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nData Source: Seattle Open Data Portal")
	fmt.Println("Dataset: SPD Crime Data: 2008-Present")
	fmt.Println("API: Socrata SODA API")
	fmt.Println("\nDownload Settings:")
	fmt.Printf("  - Record Limit: %d\n", limit)
	fmt.Printf("  - Output Path: %s\n", output)
	fmt.Println("\n" + strings.Repeat("-", 60))
	fmt.Println("\nThis may take a few minutes...")
}

// printTroubleshooting prints recovery guidance after a failed download.
func printTroubleshooting(limit int) {
	fmt.Println("\nTroubleshooting:")
	fmt.Println("  1. Check your internet connection")
	fmt.Println("  2. Verify the API endpoint is accessible")
	fmt.Printf("  3. Try reducing the limit (current: %d)\n", limit)
	fmt.Println("  4. Download manually: https://data.seattle.gov/Public-Safety/SPD-Crime-Data-2008-Present/tazs-3rd5")
}
