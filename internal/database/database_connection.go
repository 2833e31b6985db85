// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package database

import (
	"runtime"
	"time"
)

// configureConnectionPool sets connection pool parameters
//
//   - max_open: NumCPU() so the parallel statistics queries do not queue
//   - max_idle: 2 for connection reuse
//   - max_lifetime: 1h to prevent stale connections
//   - max_idle_time: 5m for idle connection cleanup
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}
