// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package api

import (
	"context"
	"time"

	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/imageproxy"
	"github.com/tomtom215/marinestats/internal/marine"
	"github.com/tomtom215/marinestats/internal/models"
	"github.com/tomtom215/marinestats/internal/stats"
	"github.com/tomtom215/marinestats/internal/tableau"
)

// abnormalityLimit is the number of records listed by /api/abnormalities.
const abnormalityLimit = 5

// defaultStatsTimeout applies when server.stats_timeout is unset.
const defaultStatsTimeout = 15 * time.Second

// Store is the occurrence store the handlers read from.
// database.DB and mongostore.Store both satisfy it.
type Store interface {
	stats.Store
	ExportOccurrences(ctx context.Context, filter models.ExportFilter) ([]models.Occurrence, error)
	TopByIndividualCount(ctx context.Context, n int) ([]models.Occurrence, error)
	Ping(ctx context.Context) error
	Backend() string
}

// Handler serves the dashboard API.
type Handler struct {
	store     Store
	stats     *stats.Aggregator
	tableau   *tableau.Service
	marine    *marine.Service
	images    *imageproxy.Fetcher
	config    *config.Config
	startTime time.Time
}

// HandlerOption overrides a collaborator built by NewHandler.
type HandlerOption func(*Handler)

// WithTableauService replaces the Tableau service.
func WithTableauService(s *tableau.Service) HandlerOption {
	return func(h *Handler) {
		h.tableau = s
	}
}

// WithMarineService replaces the ocean readings service.
func WithMarineService(s *marine.Service) HandlerOption {
	return func(h *Handler) {
		h.marine = s
	}
}

// WithImageFetcher replaces the image proxy fetcher.
func WithImageFetcher(f *imageproxy.Fetcher) HandlerOption {
	return func(h *Handler) {
		h.images = f
	}
}

// NewHandler creates a Handler over store. Collaborators not supplied as
// options are built from cfg: a circuit-breaking Tableau client, the mock
// ocean readings source and an image fetcher capped at
// server.image_max_bytes.
func NewHandler(store Store, cfg *config.Config, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:     store,
		stats:     stats.New(store, stats.WithCache(cfg.Stats.CacheTTL)),
		config:    cfg,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.tableau == nil {
		client := tableau.NewCircuitBreakerClient(tableau.NewClient(&cfg.Tableau), tableau.DefaultBreakerSettings())
		h.tableau = tableau.NewService(client, &cfg.Tableau)
	}
	if h.marine == nil {
		h.marine = marine.NewService(&cfg.Copernicus, nil)
	}
	if h.images == nil {
		h.images = imageproxy.New(cfg.Server.ImageMaxBytes)
	}
	return h
}

// Stats returns the statistics aggregator, e.g. to invalidate its cache.
func (h *Handler) Stats() *stats.Aggregator {
	return h.stats
}

// Close releases the handler's background resources.
func (h *Handler) Close() {
	h.stats.Close()
}

func (h *Handler) statsTimeout() time.Duration {
	if h.config.Server.StatsTimeout > 0 {
		return h.config.Server.StatsTimeout
	}
	return defaultStatsTimeout
}
