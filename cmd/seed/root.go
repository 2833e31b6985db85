// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Command marinestats-seed loads the occurrence CSV into the configured
// store, or converts it to a local JSON file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/logging"
)

var cfg *config.Config

var (
	csvPath   string
	batchSize int
)

var rootCmd = &cobra.Command{
	Use:   "marinestats-seed",
	Short: "Load marine occurrence records",
	Long:  "Parses the occurrence CSV export and either replaces the store contents or writes the records as JSON.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		logging.Init(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Caller: cfg.Logging.Caller,
		})

		if cmd.Flags().Changed("csv") {
			cfg.Seed.CSVPath = csvPath
		}
		if cmd.Flags().Changed("batch-size") {
			cfg.Seed.BatchSize = batchSize
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "occurrence CSV path (default from SEED_CSV_PATH)")
	rootCmd.PersistentFlags().IntVar(&batchSize, "batch-size", 0, "rows per insert batch (default from SEED_BATCH_SIZE)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
