// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/metrics"
	"github.com/tomtom215/marinestats/internal/models"
	"github.com/tomtom215/marinestats/internal/validation"
)

// Store is the write side of an occurrence store.
type Store interface {
	ReplaceAll(ctx context.Context, records []models.Occurrence, batchSize int) (int64, error)
}

// Report summarizes a seeding run.
type Report struct {
	Parsed   int `json:"parsed"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// Seeder runs the seed operations for one configuration.
type Seeder struct {
	cfg   *config.SeedConfig
	store Store
}

// New creates a Seeder. store may be nil when only SeedLocal is used.
func New(cfg *config.SeedConfig, store Store) *Seeder {
	return &Seeder{cfg: cfg, store: store}
}

// load reads and parses the configured CSV file.
func (s *Seeder) load(ctx context.Context) ([]models.Occurrence, error) {
	f, err := os.Open(s.cfg.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.cfg.CSVPath, err)
	}
	defer f.Close()

	records, err := ReadCSV(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.cfg.CSVPath, err)
	}
	return records, nil
}

// Seed replaces the store contents with the valid rows of the CSV file.
func (s *Seeder) Seed(ctx context.Context) (*Report, error) {
	if s.store == nil {
		return nil, fmt.Errorf("seed: no store configured")
	}
	start := time.Now()

	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	valid := Validate(records)
	report := &Report{Parsed: len(records), Skipped: len(records) - len(valid)}

	inserted, err := s.store.ReplaceAll(ctx, valid, s.cfg.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to insert occurrences: %w", err)
	}
	report.Inserted = int(inserted)

	metrics.RecordSeed(report.Parsed, report.Inserted, report.Skipped, time.Since(start))
	logging.Info().
		Int("parsed", report.Parsed).
		Int("inserted", report.Inserted).
		Int("skipped", report.Skipped).
		Dur("duration", time.Since(start)).
		Msg("Occurrence data seeded")

	return report, nil
}

// Validate returns the records that pass struct validation, logging the
// reason for each rejected row. Row numbers count the header as row 1.
func Validate(records []models.Occurrence) []models.Occurrence {
	valid := make([]models.Occurrence, 0, len(records))
	for i := range records {
		if verr := validation.ValidateStruct(&records[i]); verr != nil {
			logging.Warn().Int("row", i+2).Str("reason", verr.Error()).Msg("Skipping invalid occurrence")
			continue
		}
		valid = append(valid, records[i])
	}
	return valid
}

// SeedLocal writes every parsed record as indented JSON to the configured
// output path, creating its directory. It returns the record count.
func (s *Seeder) SeedLocal(ctx context.Context) (int, error) {
	records, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	if records == nil {
		records = []models.Occurrence{}
	}

	if err := os.MkdirAll(filepath.Dir(s.cfg.OutputPath), 0o750); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode occurrences: %w", err)
	}
	if err := os.WriteFile(s.cfg.OutputPath, data, 0o600); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", s.cfg.OutputPath, err)
	}

	logging.Info().Int("records", len(records)).Str("path", s.cfg.OutputPath).Msg("Occurrence data written")
	return len(records), nil
}
