// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Package storage opens the configured occurrence store backend.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/tomtom215/marinestats/internal/api"
	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/database"
	"github.com/tomtom215/marinestats/internal/mongostore"
	"github.com/tomtom215/marinestats/internal/seed"
)

// Store is everything the server and the seeder need from a backend.
type Store interface {
	api.Store
	seed.Store
	io.Closer
}

var (
	_ Store = (*database.DB)(nil)
	_ Store = (*mongostore.Store)(nil)
)

// Open connects to the backend selected by cfg.Backend.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendDuckDB, "":
		db, err := database.New(cfg)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.BackendMongoDB:
		store, err := mongostore.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
