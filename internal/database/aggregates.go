// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/marinestats/internal/models"
)

// CountOccurrences returns the total number of records.
func (db *DB) CountOccurrences(ctx context.Context) (count int64, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("count", time.Now(), &err)

	if err = db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM occurrences").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count occurrences: %w", err)
	}
	return count, nil
}

// DistinctValues returns the distinct non-null values of field. Empty
// strings are included; callers decide whether they count.
func (db *DB) DistinctValues(ctx context.Context, field string) (values []string, err error) {
	col, err := columnFor(field)
	if err != nil {
		return nil, err
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("distinct", time.Now(), &err)

	query := fmt.Sprintf("SELECT DISTINCT %[1]s FROM occurrences WHERE %[1]s IS NOT NULL ORDER BY %[1]s", col)
	values, err = queryAndScan(ctx, db.conn, query, nil, func(rows *sql.Rows) (string, error) {
		var v string
		err := rows.Scan(&v)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", field, err)
	}
	return values, nil
}

// GroupCount counts records per non-empty value of field, highest first.
// Ties are broken alphabetically.
func (db *DB) GroupCount(ctx context.Context, field string, limit int) (groups []models.GroupCount, err error) {
	col, err := columnFor(field)
	if err != nil {
		return nil, err
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("group_count", time.Now(), &err)

	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*) AS n
		FROM occurrences
		WHERE %[1]s IS NOT NULL AND %[1]s <> ''
		GROUP BY %[1]s
		ORDER BY n DESC, %[1]s
		LIMIT ?`, col)

	groups, err = queryAndScan(ctx, db.conn, query, []interface{}{limit}, func(rows *sql.Rows) (models.GroupCount, error) {
		var g models.GroupCount
		err := rows.Scan(&g.Key, &g.Count)
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to group by %s: %w", field, err)
	}
	return groups, nil
}

// DepthSummary averages and bounds the depths of records whose minimum and
// maximum depth both cast to finite numbers. It returns nil when no record
// qualifies.
func (db *DB) DepthSummary(ctx context.Context) (agg *models.DepthAggregate, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("depth_summary", time.Now(), &err)

	const query = `
		WITH depths AS (
			SELECT
				TRY_CAST(trim(minimum_depth_in_meters) AS DOUBLE) AS min_depth,
				TRY_CAST(trim(maximum_depth_in_meters) AS DOUBLE) AS max_depth
			FROM occurrences
		)
		SELECT COUNT(*), AVG(min_depth), AVG(max_depth), MIN(min_depth), MAX(max_depth)
		FROM depths
		WHERE min_depth IS NOT NULL AND max_depth IS NOT NULL
		  AND isfinite(min_depth) AND isfinite(max_depth)`

	var (
		records                int64
		avgMin, avgMax, lo, hi sql.NullFloat64
	)
	if err = db.conn.QueryRowContext(ctx, query).Scan(&records, &avgMin, &avgMax, &lo, &hi); err != nil {
		return nil, fmt.Errorf("failed to summarize depths: %w", err)
	}
	if records == 0 {
		return nil, nil
	}

	return &models.DepthAggregate{
		Records: records,
		AvgMin:  avgMin.Float64,
		AvgMax:  avgMax.Float64,
		Min:     lo.Float64,
		Max:     hi.Float64,
	}, nil
}

// SpeciesSummary returns the most observed species with the number of
// distinct non-empty localities each was seen at.
func (db *DB) SpeciesSummary(ctx context.Context, limit int) (species []models.SpeciesAggregate, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("species_summary", time.Now(), &err)

	const query = `
		SELECT scientific_name, COUNT(*) AS n, COUNT(DISTINCT NULLIF(locality, '')) AS localities
		FROM occurrences
		WHERE scientific_name IS NOT NULL AND scientific_name <> ''
		GROUP BY scientific_name
		ORDER BY n DESC, scientific_name
		LIMIT ?`

	species, err = queryAndScan(ctx, db.conn, query, []interface{}{limit}, func(rows *sql.Rows) (models.SpeciesAggregate, error) {
		var s models.SpeciesAggregate
		err := rows.Scan(&s.ScientificName, &s.Occurrences, &s.Localities)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to summarize species: %w", err)
	}
	return species, nil
}

// DailyActivity takes the sample most recent non-empty event dates (by
// string order) and counts them per calendar day, newest first.
func (db *DB) DailyActivity(ctx context.Context, sample, limit int) (days []models.DateCount, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("daily_activity", time.Now(), &err)

	const query = `
		SELECT event_date
		FROM occurrences
		WHERE event_date IS NOT NULL AND event_date <> ''
		ORDER BY event_date DESC
		LIMIT ?`

	dates, err := queryAndScan(ctx, db.conn, query, []interface{}{sample}, func(rows *sql.Rows) (string, error) {
		var d string
		err := rows.Scan(&d)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load recent event dates: %w", err)
	}
	return models.GroupByDay(dates, limit), nil
}
