// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

/*
Package seed loads occurrence records from a Darwin Core CSV export.

Two operations are provided:

  - Seed parses the CSV, drops rows that fail validation, wipes the
    configured store and inserts the remaining rows in batches.
  - SeedLocal parses the CSV and writes every record as indented JSON,
    for running the dashboard against a file instead of a database.

The first CSV row names the columns. Column names are the occurrence JSON
keys (decimalLatitude, scientificName, ...); the legacy ImageLinks header
is accepted for image_links. Unknown columns are ignored and empty cells
leave the field absent.

Example:

	s := seed.New(&cfg.Seed, db)
	report, err := s.Seed(ctx)
	// report.Parsed, report.Inserted, report.Skipped
*/
package seed
