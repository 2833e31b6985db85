// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marinestats/internal/models"
)

// StatsRefresher recomputes the statistics snapshot and caches it.
// *stats.Aggregator satisfies it.
type StatsRefresher interface {
	Refresh(ctx context.Context) (*models.Statistics, error)
}

// StatsWarmerService recomputes the statistics snapshot on startup and
// then every interval, so dashboard requests are answered from cache.
type StatsWarmerService struct {
	refresher StatsRefresher
	interval  time.Duration
	timeout   time.Duration
	logger    zerolog.Logger
	name      string
}

// NewStatsWarmerService creates the warmer. interval should be shorter
// than the cache TTL; timeout bounds one refresh.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewStatsWarmerService(refresher StatsRefresher, interval, timeout time.Duration, logger zerolog.Logger) *StatsWarmerService {
	if interval <= 0 {
		interval = time.Minute
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &StatsWarmerService{
		refresher: refresher,
		interval:  interval,
		timeout:   timeout,
		logger:    logger.With().Str("service", "stats-warmer").Logger(),
		name:      "stats-warmer",
	}
}

// Serve implements suture.Service. Refresh failures are logged and retried
// on the next tick; they never stop the service.
func (s *StatsWarmerService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("stats warmer starting")
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *StatsWarmerService) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	snap, err := s.refresher.Refresh(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("stats refresh failed")
		return
	}
	s.logger.Debug().
		Int64("occurrences", snap.Overview.TotalOccurrences).
		Dur("duration", time.Since(start)).
		Msg("stats snapshot refreshed")
}

// String names the service in supervisor events.
func (s *StatsWarmerService) String() string {
	return s.name
}
