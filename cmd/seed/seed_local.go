// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marinestats/internal/seed"
)

var outputPath string

var seedLocalCmd = &cobra.Command{
	Use:   "seed-local",
	Short: "Convert the CSV records to a JSON file",
	Long: `Parses the CSV and writes every record as an indented JSON array.
No store is opened.

Example:
  marinestats-seed seed-local --csv ./data/occurrence.csv --output ./data/occurrences.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("output") {
			cfg.Seed.OutputPath = outputPath
		}

		n, err := seed.New(&cfg.Seed, nil).SeedLocal(cmd.Context())
		if err != nil {
			return fmt.Errorf("seed-local: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d occurrences to %s\n", n, cfg.Seed.OutputPath)
		return nil
	},
}

func init() {
	seedLocalCmd.Flags().StringVar(&outputPath, "output", "", "JSON output path (default from SEED_OUTPUT_PATH)")
	rootCmd.AddCommand(seedLocalCmd)
}
