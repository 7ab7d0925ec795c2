package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reub360/seattle-crime/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "seattle-crime",
	Short: "Seattle crime data acquisition and validation toolkit",
	Long:  "Downloads SPD crime data from the Seattle Open Data Portal and validates local tabular and geospatial extracts ahead of analysis.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
