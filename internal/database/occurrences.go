// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/models"
)

// ReplaceAll wipes the occurrence table and inserts records in batches of
// batchSize inside a single transaction. A non-positive batchSize inserts
// everything in one statement. Record IDs are assigned in input order
// starting at 1.
func (db *DB) ReplaceAll(ctx context.Context, records []models.Occurrence, batchSize int) (inserted int64, err error) {
	defer db.observe("replace_all", time.Now(), &err)

	if batchSize <= 0 || batchSize > len(records) {
		batchSize = len(records)
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Warn().Err(rbErr).Msg("Failed to roll back occurrence replace")
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM "+occurrenceTable); err != nil {
		return 0, fmt.Errorf("failed to clear occurrences: %w", err)
	}

	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))
		query, args := buildInsert(records[start:end], int64(start))
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return inserted, fmt.Errorf("failed to insert occurrences %d-%d: %w", start, end-1, err)
		}
		inserted += int64(end - start)
		logging.Debug().Int("batch_end", end).Int("total", len(records)).Msg("Inserted occurrence batch")
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit occurrences: %w", err)
	}
	return inserted, nil
}

// buildInsert renders one multi-row INSERT for batch. offset is the number
// of records already written, used to continue the record_id sequence.
func buildInsert(batch []models.Occurrence, offset int64) (string, []interface{}) {
	placeholders := "(?" + strings.Repeat(", ?", len(occurrenceColumns)) + ")"

	rows := make([]string, len(batch))
	args := make([]interface{}, 0, len(batch)*(len(occurrenceColumns)+1))
	for i := range batch {
		rows[i] = placeholders
		args = append(args, offset+int64(i)+1)
		for _, v := range batch[i].Values() {
			args = append(args, nullable(v))
		}
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", occurrenceTable, selectColumns, strings.Join(rows, ", "))
	return query, args
}

// nullable converts an optional attribute to a driver value.
func nullable(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// ExportOccurrences returns the records matching filter in insertion order.
// Empty date bounds are ignored; the species pattern is matched
// case-insensitively and must already be a valid RE2 expression.
func (db *DB) ExportOccurrences(ctx context.Context, filter models.ExportFilter) (records []models.Occurrence, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("export", time.Now(), &err)

	qb := newQueryBuilder("SELECT " + selectColumns + " FROM occurrences WHERE 1=1")
	qb.addFilterIf(filter.Start, "event_date >= ?").
		addFilterIf(filter.End, "event_date <= ?").
		addFilterIf(filter.Species, "regexp_matches(scientific_name, ?, 'i')")
	query, args := qb.build("ORDER BY record_id")

	records, err = queryAndScan(ctx, db.conn, query, args, scanOccurrence)
	if err != nil {
		return nil, fmt.Errorf("failed to export occurrences: %w", err)
	}
	return records, nil
}

// TopByIndividualCount returns the n records with the largest individual
// counts. Counts that do not start with an integer rank as 0; ties keep
// insertion order.
func (db *DB) TopByIndividualCount(ctx context.Context, n int) (records []models.Occurrence, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("top_individual_count", time.Now(), &err)

	query := "SELECT " + selectColumns + `
		FROM occurrences
		ORDER BY COALESCE(TRY_CAST(regexp_extract(trim(individual_count), '^[+-]?[0-9]+') AS BIGINT), 0) DESC, record_id
		LIMIT ?`

	records, err = queryAndScan(ctx, db.conn, query, []interface{}{n}, scanOccurrence)
	if err != nil {
		return nil, fmt.Errorf("failed to rank occurrences by individual count: %w", err)
	}
	return records, nil
}
