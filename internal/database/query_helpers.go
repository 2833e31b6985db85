// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/tomtom215/marinestats/internal/models"
)

// queryBuilder helps construct SQL queries with optional filters
type queryBuilder struct {
	baseQuery string
	args      []interface{}
	filters   []string
}

// newQueryBuilder creates a new query builder. baseQuery must end in a
// WHERE clause so filters can be appended with AND.
func newQueryBuilder(baseQuery string) *queryBuilder {
	return &queryBuilder{
		baseQuery: baseQuery,
		args:      make([]interface{}, 0, 4),
		filters:   make([]string, 0, 4),
	}
}

// addFilter adds a custom filter condition
func (qb *queryBuilder) addFilter(condition string, args ...interface{}) *queryBuilder {
	qb.filters = append(qb.filters, condition)
	qb.args = append(qb.args, args...)
	return qb
}

// addFilterIf adds a filter only when value is non-empty
func (qb *queryBuilder) addFilterIf(value, condition string) *queryBuilder {
	if value != "" {
		qb.addFilter(condition, value)
	}
	return qb
}

// build constructs the final query and returns it with args
func (qb *queryBuilder) build(suffix string, suffixArgs ...interface{}) (string, []interface{}) {
	query := qb.baseQuery
	if len(qb.filters) > 0 {
		query += " AND " + strings.Join(qb.filters, " AND ")
	}
	if suffix != "" {
		query += " " + suffix
	}
	return query, append(qb.args, suffixArgs...)
}

// scanFunc is a function that scans a single row into a result type
type scanFunc[T any] func(*sql.Rows) (T, error)

// queryAndScan executes a query and scans all rows using the provided scan function
func queryAndScan[T any](ctx context.Context, db *sql.DB, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// scanOccurrence reads a row produced by selectColumns.
func scanOccurrence(rows *sql.Rows) (models.Occurrence, error) {
	var o models.Occurrence
	dest := append([]any{&o.RecordID}, o.ScanTargets()...)
	err := rows.Scan(dest...)
	return o, err
}
