// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package models

import (
	"math"
	"strconv"
	"strings"
)

// UnknownSpecies is the display name used when a scientific name is blank.
const UnknownSpecies = "Unknown"

// ParseCount interprets a stored individual count as a whole number.
// Leading digits are honored ("12 adults" is 12).
func ParseCount(s *string) (int64, bool) {
	if s == nil {
		return 0, false
	}
	raw := strings.TrimSpace(*s)
	end := 0
	for end < len(raw) && (raw[end] >= '0' && raw[end] <= '9' || end == 0 && (raw[0] == '-' || raw[0] == '+')) {
		end++
	}
	n, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DisplayName returns the genus (first word) of a scientific name.
func DisplayName(scientificName string) string {
	fields := strings.Fields(scientificName)
	if len(fields) == 0 {
		return UnknownSpecies
	}
	return fields[0]
}

// NewDepthStatistics rounds a store aggregate for presentation.
// A nil or empty aggregate yields nil.
func NewDepthStatistics(agg *DepthAggregate) *DepthStatistics {
	if agg == nil || agg.Records == 0 {
		return nil
	}
	return &DepthStatistics{
		AverageMinDepth:  Round2(agg.AvgMin),
		AverageMaxDepth:  Round2(agg.AvgMax),
		MinRecordedDepth: agg.Min,
		MaxRecordedDepth: agg.Max,
	}
}
