// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Package mongostore is the MongoDB occurrence store.
//
// It implements the same contract as the DuckDB store so the statistics
// aggregator, the export endpoints and the seeder can run against either
// backend. Each occurrence is one document whose keys are the Darwin Core
// attribute names; absent attributes are omitted from the document.
//
// Aggregations run as pipelines on the server. Depth values are coerced with
// $convert (unparseable, infinite and NaN values are dropped) and species
// locality counts use $addToSet.
package mongostore
