// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package database

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/tomtom215/marinestats/internal/models"
)

// occurrenceTable holds one row per occurrence record.
const occurrenceTable = "occurrences"

var (
	// occurrenceColumns lists the attribute columns in models.OccurrenceFields order.
	occurrenceColumns = func() []string {
		cols := make([]string, len(models.OccurrenceFields))
		for i, field := range models.OccurrenceFields {
			cols[i] = snakeCase(field)
		}
		return cols
	}()

	// columnByField maps a record attribute name to its column.
	columnByField = func() map[string]string {
		m := make(map[string]string, len(models.OccurrenceFields))
		for i, field := range models.OccurrenceFields {
			m[field] = occurrenceColumns[i]
		}
		return m
	}()

	// selectColumns is the projection used to load whole records.
	selectColumns = "record_id, " + strings.Join(occurrenceColumns, ", ")
)

// snakeCase converts a Darwin Core attribute name to a column name,
// keeping acronyms together (occurrenceID -> occurrence_id).
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// columnFor resolves a record attribute to its column.
func columnFor(field string) (string, error) {
	col, ok := columnByField[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return col, nil
}

// createTables creates the occurrence table and its indexes.
//
// Every attribute is VARCHAR: values are stored exactly as they appeared in
// the source CSV and coerced at query time.
func (db *DB) createTables(ctx context.Context) error {
	defs := make([]string, 0, len(occurrenceColumns)+1)
	defs = append(defs, "record_id BIGINT NOT NULL")
	for _, col := range occurrenceColumns {
		defs = append(defs, col+" VARCHAR")
	}

	statements := []string{
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", occurrenceTable, strings.Join(defs, ",\n\t")),
		"CREATE INDEX IF NOT EXISTS idx_occurrences_scientific_name ON occurrences(scientific_name)",
		"CREATE INDEX IF NOT EXISTS idx_occurrences_event_date ON occurrences(event_date)",
	}

	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
