// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package models

import (
	"sort"
	"strings"
	"time"
)

// DayLayout is the calendar-day format used in recent activity.
const DayLayout = "2006-01-02"

// eventDateLayouts are tried in order. Layouts without a zone are read as UTC.
var eventDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	DayLayout,
	"2006/01/02",
	"2006-01",
	"2006",
}

// EventDay normalizes a stored eventDate to YYYY-MM-DD in UTC.
// ISO 8601 intervals ("start/end") use their start. ok is false when the
// value is blank or in no recognized format.
func EventDay(raw string) (day string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if day, ok := parseDay(raw); ok {
		return day, true
	}
	if start, _, found := strings.Cut(raw, "/"); found {
		return parseDay(start)
	}
	return "", false
}

func parseDay(raw string) (string, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(DayLayout), true
		}
	}
	return "", false
}

// GroupByDay counts dates per calendar day, newest day first, keeping at
// most limit days. Unrecognized dates are dropped.
func GroupByDay(dates []string, limit int) []DateCount {
	counts := make(map[string]int64)
	for _, raw := range dates {
		if day, ok := EventDay(raw); ok {
			counts[day]++
		}
	}

	out := make([]DateCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DateCount{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
