// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

/*
Package models defines the data structures shared by the Marinestats stores,
the statistics aggregator and the HTTP API.

Key Components:

  - Occurrence: one Darwin Core observation record as loaded by the seeder.
    Every attribute is optional and stored as text, exactly as it appeared
    in the source CSV.
  - Statistics: the dashboard snapshot returned by /api/fish/stats.
  - GroupCount, DepthAggregate, SpeciesAggregate, DateCount: the raw results
    a store returns for each aggregation query.
  - ExportRow, ExportFilter, Abnormality, OceanReading: payloads for the
    remaining API routes.

Text Coercion:

Numeric attributes (depths, coordinates, individual counts) are kept as
strings. The stores parse depths in their own query language and drop
unparseable values. ParseCount reports whether a count was usable instead
of substituting zero.
Event dates are normalized to calendar days by EventDay, and GroupByDay
buckets a sample of dates the same way for every store backend.

Tableau REST payloads live in the tableau subpackage.
*/
package models
