// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Package export shapes stored occurrences for Tableau data sources and
// renders them as JSON envelopes or CSV attachments.
package export
