// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package models

// Statistics is the dashboard snapshot served by /api/fish/stats.
type Statistics struct {
	Overview             Overview         `json:"overview"`
	TopSpecies           []TopSpecies     `json:"topSpecies"`
	HabitatDistribution  []HabitatCount   `json:"habitatDistribution"`
	LocalityDistribution []LocalityCount  `json:"localityDistribution"`
	DepthStatistics      *DepthStatistics `json:"depthStatistics"`
	RecentActivity       []ActivityCount  `json:"recentActivity"`
}

// Overview holds the headline counters.
// TotalLocations and TotalHabitats count the entries of the truncated
// distributions, not the whole store.
type Overview struct {
	TotalOccurrences int64 `json:"totalOccurrences"`
	UniqueSpecies    int64 `json:"uniqueSpecies"`
	TotalLocations   int   `json:"totalLocations"`
	TotalHabitats    int   `json:"totalHabitats"`
}

// TopSpecies is one entry of the most observed species list
type TopSpecies struct {
	ScientificName  string `json:"scientificName"`
	Name            string `json:"name"`
	OccurrenceCount int64  `json:"occurrenceCount"`
	LocationCount   int64  `json:"locationCount"`
}

// HabitatCount is one bucket of the habitat distribution
type HabitatCount struct {
	Habitat string `json:"habitat"`
	Count   int64  `json:"count"`
}

// LocalityCount is one bucket of the locality distribution
type LocalityCount struct {
	Locality string `json:"locality"`
	Count    int64  `json:"count"`
}

// DepthStatistics summarizes records whose minimum and maximum depths both
// parse as numbers. The averages are rounded to two decimals.
type DepthStatistics struct {
	AverageMinDepth  float64 `json:"averageMinDepth"`
	AverageMaxDepth  float64 `json:"averageMaxDepth"`
	MinRecordedDepth float64 `json:"minRecordedDepth"`
	MaxRecordedDepth float64 `json:"maxRecordedDepth"`
}

// ActivityCount is the number of observations on one calendar day.
type ActivityCount struct {
	Date        string `json:"date"`
	Occurrences int64  `json:"occurrences"`
}

// GroupCount is a store result for a grouped count over one attribute.
type GroupCount struct {
	Key   string `json:"key" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// DepthAggregate is the unrounded depth summary computed by a store.
type DepthAggregate struct {
	Records int64   `json:"records" bson:"records"`
	AvgMin  float64 `json:"avgMin" bson:"avgMin"`
	AvgMax  float64 `json:"avgMax" bson:"avgMax"`
	Min     float64 `json:"min" bson:"min"`
	Max     float64 `json:"max" bson:"max"`
}

// SpeciesAggregate is a per-species count with its distinct locality count.
type SpeciesAggregate struct {
	ScientificName string `json:"scientificName" bson:"_id"`
	Occurrences    int64  `json:"occurrences" bson:"occurrences"`
	Localities     int64  `json:"localities" bson:"localities"`
}

// DateCount is a per-day count produced by GroupByDay.
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	Backend           string  `json:"backend"`
	DatabaseConnected bool    `json:"database_connected"`
	TableauConfigured bool    `json:"tableau_configured"`
	Uptime            float64 `json:"uptime_seconds"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}
