// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Package stats computes the dashboard statistics snapshot from an
// occurrence store.
//
// Five independent aggregations (total count, distinct species, habitat and
// locality distributions, depth summary) run concurrently. Top species and
// recent activity follow once they complete. Any failure fails the whole
// snapshot; partial results are never returned.
package stats

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/marinestats/internal/cache"
	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/metrics"
	"github.com/tomtom215/marinestats/internal/models"
)

// Result sizes of the snapshot.
const (
	TopSpeciesLimit    = 5
	HabitatLimit       = 10
	LocalityLimit      = 20
	ActivitySampleSize = 100
	ActivityDaysLimit  = 30
)

const (
	speciesField     = "scientificName"
	habitatField     = "habitat"
	localityField    = "locality"
	snapshotCacheKey = "fish:stats"
)

// Store is the read side of an occurrence store needed by the aggregator.
type Store interface {
	// CountOccurrences returns the number of records.
	CountOccurrences(ctx context.Context) (int64, error)
	// DistinctValues returns the distinct non-null values of field.
	DistinctValues(ctx context.Context, field string) ([]string, error)
	// GroupCount counts records per non-empty value of field, highest count
	// first, keeping at most limit groups.
	GroupCount(ctx context.Context, field string, limit int) ([]models.GroupCount, error)
	// DepthSummary aggregates records whose depths both parse as numbers.
	// It returns nil when no record qualifies.
	DepthSummary(ctx context.Context) (*models.DepthAggregate, error)
	// SpeciesSummary groups by scientific name with distinct locality counts.
	SpeciesSummary(ctx context.Context, limit int) ([]models.SpeciesAggregate, error)
	// DailyActivity groups the sample most recently dated records by day.
	DailyActivity(ctx context.Context, sample, limit int) ([]models.DateCount, error)
}

// Aggregator builds statistics snapshots. It is safe for concurrent use.
type Aggregator struct {
	store Store
	cache *cache.Cache[*models.Statistics]
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithCache keeps each snapshot for ttl. A non-positive ttl disables caching.
func WithCache(ttl time.Duration) Option {
	return func(a *Aggregator) {
		if ttl > 0 {
			a.cache = cache.New[*models.Statistics](ttl)
		}
	}
}

// New creates an Aggregator over store.
func New(store Store, opts ...Option) *Aggregator {
	a := &Aggregator{store: store}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Close releases the snapshot cache, if any.
func (a *Aggregator) Close() {
	if a.cache != nil {
		a.cache.Close()
	}
}

// Invalidate drops a cached snapshot, e.g. after reseeding.
func (a *Aggregator) Invalidate() {
	if a.cache != nil {
		a.cache.Clear()
	}
}

// namedQuery is a sub-query tagged for error reporting.
type namedQuery struct {
	name string
	run  func(ctx context.Context) error
}

// runParallel executes queries concurrently and returns the first error.
// The group context is cancelled as soon as one query fails.
func runParallel(ctx context.Context, queries []namedQuery) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, q := range queries {
		g.Go(func() error {
			if err := q.run(gctx); err != nil {
				metrics.StatsSubqueryErrors.WithLabelValues(q.name).Inc()
				logging.Ctx(ctx).Error().Err(err).Str("subquery", q.name).Msg("Statistics sub-query failed")
				return fmt.Errorf("failed to compute %s: %w", q.name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Compute returns the current statistics snapshot.
func (a *Aggregator) Compute(ctx context.Context) (*models.Statistics, error) {
	if a.cache != nil {
		if snap, ok := a.cache.Get(snapshotCacheKey); ok {
			metrics.StatsCacheHits.Inc()
			return snap, nil
		}
		metrics.StatsCacheMisses.Inc()
	}

	return a.Refresh(ctx)
}

// Refresh computes a fresh snapshot, bypassing and then replacing any
// cached one.
func (a *Aggregator) Refresh(ctx context.Context) (*models.Statistics, error) {
	start := time.Now()
	snap, err := a.compute(ctx)
	if err != nil {
		return nil, err
	}
	metrics.StatsComputeDuration.Observe(time.Since(start).Seconds())

	if a.cache != nil {
		a.cache.Set(snapshotCacheKey, snap)
	}
	return snap, nil
}

// Cached reports whether snapshots are cached.
func (a *Aggregator) Cached() bool {
	return a.cache != nil
}

func (a *Aggregator) compute(ctx context.Context) (*models.Statistics, error) {
	var (
		total      int64
		species    []string
		habitats   []models.GroupCount
		localities []models.GroupCount
		depth      *models.DepthAggregate
	)

	first := []namedQuery{
		{"total count", func(ctx context.Context) (err error) {
			total, err = a.store.CountOccurrences(ctx)
			return err
		}},
		{"unique species", func(ctx context.Context) (err error) {
			species, err = a.store.DistinctValues(ctx, speciesField)
			return err
		}},
		{"habitat distribution", func(ctx context.Context) (err error) {
			habitats, err = a.store.GroupCount(ctx, habitatField, HabitatLimit)
			return err
		}},
		{"locality distribution", func(ctx context.Context) (err error) {
			localities, err = a.store.GroupCount(ctx, localityField, LocalityLimit)
			return err
		}},
		{"depth statistics", func(ctx context.Context) (err error) {
			depth, err = a.store.DepthSummary(ctx)
			return err
		}},
	}
	if err := runParallel(ctx, first); err != nil {
		return nil, err
	}

	var (
		top      []models.SpeciesAggregate
		activity []models.DateCount
	)
	second := []namedQuery{
		{"top species", func(ctx context.Context) (err error) {
			top, err = a.store.SpeciesSummary(ctx, TopSpeciesLimit)
			return err
		}},
		{"recent activity", func(ctx context.Context) (err error) {
			activity, err = a.store.DailyActivity(ctx, ActivitySampleSize, ActivityDaysLimit)
			return err
		}},
	}
	if err := runParallel(ctx, second); err != nil {
		return nil, err
	}

	return assemble(total, species, habitats, localities, depth, top, activity), nil
}

// assemble reshapes store results into the response payload. Limits are
// re-applied here so an over-eager store cannot widen the snapshot.
func assemble(
	total int64,
	species []string,
	habitats, localities []models.GroupCount,
	depth *models.DepthAggregate,
	top []models.SpeciesAggregate,
	activity []models.DateCount,
) *models.Statistics {
	var unique int64
	for _, name := range species {
		if name != "" {
			unique++
		}
	}

	habitats = truncate(habitats, HabitatLimit)
	localities = truncate(localities, LocalityLimit)
	top = truncate(top, TopSpeciesLimit)
	activity = truncate(activity, ActivityDaysLimit)

	snap := &models.Statistics{
		Overview: models.Overview{
			TotalOccurrences: total,
			UniqueSpecies:    unique,
			TotalLocations:   len(localities),
			TotalHabitats:    len(habitats),
		},
		TopSpecies:           make([]models.TopSpecies, 0, len(top)),
		HabitatDistribution:  make([]models.HabitatCount, 0, len(habitats)),
		LocalityDistribution: make([]models.LocalityCount, 0, len(localities)),
		DepthStatistics:      models.NewDepthStatistics(depth),
		RecentActivity:       make([]models.ActivityCount, 0, len(activity)),
	}

	for _, s := range top {
		snap.TopSpecies = append(snap.TopSpecies, models.TopSpecies{
			ScientificName:  s.ScientificName,
			Name:            models.DisplayName(s.ScientificName),
			OccurrenceCount: s.Occurrences,
			LocationCount:   s.Localities,
		})
	}
	for _, h := range habitats {
		snap.HabitatDistribution = append(snap.HabitatDistribution, models.HabitatCount{Habitat: h.Key, Count: h.Count})
	}
	for _, l := range localities {
		snap.LocalityDistribution = append(snap.LocalityDistribution, models.LocalityCount{Locality: l.Key, Count: l.Count})
	}
	for _, d := range activity {
		snap.RecentActivity = append(snap.RecentActivity, models.ActivityCount{Date: d.Date, Occurrences: d.Count})
	}

	return snap
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
