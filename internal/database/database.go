// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/metrics"
)

// backendName labels metrics and health output.
const backendName = "duckdb"

// DB wraps the DuckDB connection and provides occurrence data access
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens (or creates) the DuckDB database and ensures the schema exists.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301
	if cfg.Path != ":memory:" {
		if dbDir := filepath.Dir(cfg.Path); dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	// Auto-install/auto-load stay off: the schema needs no extensions.
	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, numThreads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn: conn,
		cfg:  cfg,
	}

	db.configureConnectionPool()

	if err := db.initialize(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.enableProfiling(); err != nil {
		logging.Warn().Err(err).Msg("Query profiling not enabled")
	}

	return db, nil
}

// Backend returns the store backend name.
func (db *DB) Backend() string {
	return backendName
}

// Conn returns the underlying SQL database connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Close checkpoints the WAL and closes the connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
	}
	cancel()

	return db.conn.Close()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return ErrNoConnection
	}
	return db.conn.PingContext(ctx)
}

// initialize creates the schema and flushes it to disk.
func (db *DB) initialize() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.createTables(ctx); err != nil {
		return err
	}

	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to checkpoint after schema initialization")
	}
	return nil
}

// observe records a store query in Prometheus. It is deferred with a
// pointer to the caller's named error so the final value is reported.
func (db *DB) observe(operation string, start time.Time, err *error) {
	metrics.RecordStoreQuery(backendName, operation, time.Since(start), *err)
}
