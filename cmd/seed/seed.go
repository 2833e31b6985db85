// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/seed"
	"github.com/tomtom215/marinestats/internal/storage"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the store contents with the CSV records",
	Long: `Deletes every stored occurrence, then inserts the valid rows of the CSV.

Rows without an id or scientific name are skipped and logged.

Examples:
  marinestats-seed seed --csv ./data/occurrence.csv
  DATABASE_BACKEND=mongodb MONGODB_URI=mongodb://localhost:27017 marinestats-seed seed`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := storage.Open(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("seed: open store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing occurrence store")
			}
		}()

		report, err := seed.New(&cfg.Seed, store).Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d occurrences into %s (%d parsed, %d skipped)\n",
			report.Inserted, store.Backend(), report.Parsed, report.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
