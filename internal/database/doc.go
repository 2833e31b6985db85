// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Package database is the DuckDB-backed occurrence store.
//
// # Overview
//
// Occurrence records are kept in a single occurrences table. Every Darwin
// Core attribute is a VARCHAR column holding the text exactly as it was
// seeded; numeric interpretation (depths, counts) happens inside the
// aggregation queries with TRY_CAST so malformed values are skipped rather
// than failing the query.
//
// # Files
//
//   - database.go: lifecycle (open, schema initialization, close, ping)
//   - database_schema.go: table and index DDL, attribute to column mapping
//   - database_connection.go: connection pool tuning
//   - database_utils.go: query timeouts, checkpointing, profiling
//   - aggregates.go: the statistics queries consumed by the stats package
//   - occurrences.go: bulk replace, export and ranking by individual count
//   - query_helpers.go: query builder and generic row scanning
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	agg := stats.New(db)
//	snapshot, err := agg.Compute(ctx)
//
// # Thread Safety
//
// DB is safe for concurrent use. The statistics aggregator issues its
// sub-queries in parallel over the shared connection pool.
//
// # Metrics
//
// Every query records its latency and outcome in the
// store_query_duration_seconds histogram with backend="duckdb".
package database
