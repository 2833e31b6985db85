// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tomtom215/marinestats/internal/logging"
)

// defaultQueryTimeout applies when neither the caller nor the config sets one.
const defaultQueryTimeout = 30 * time.Second

// enableProfiling enables DuckDB query profiling for performance debugging
func (db *DB) enableProfiling() error {
	if os.Getenv("ENABLE_QUERY_PROFILING") != "true" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, "PRAGMA enable_profiling"); err != nil {
		return fmt.Errorf("failed to enable profiling: %w", err)
	}

	if _, err := db.conn.ExecContext(ctx, "PRAGMA profiling_mode = 'detailed'"); err != nil {
		return fmt.Errorf("failed to set profiling mode: %w", err)
	}

	logging.Info().Msg("Query profiling enabled (detailed mode)")
	return nil
}

// ensureContext adds the configured query timeout when ctx has no deadline.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := defaultQueryTimeout
	if db.cfg != nil && db.cfg.QueryTimeout > 0 {
		timeout = db.cfg.QueryTimeout
	}

	if ctx == nil {
		return context.WithTimeout(context.Background(), timeout)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}

// Checkpoint forces a WAL checkpoint
func (db *DB) Checkpoint(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

