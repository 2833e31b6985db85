// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package models

import "time"

// ExportFilter narrows a data export.
//
// Start and End bound eventDate inclusively using plain string comparison,
// so callers should pass ISO dates. Species is a case-insensitive regular
// expression matched against scientificName.
type ExportFilter struct {
	Start   string
	End     string
	Species string
}

// HasDateRange reports whether a date window was requested.
func (f ExportFilter) HasDateRange() bool {
	return f.Start != "" || f.End != ""
}

// ExportRow is one occurrence shaped for Tableau ingestion.
type ExportRow struct {
	ID                 string  `json:"id"`
	ScientificName     *string `json:"scientificName"`
	CommonName         string  `json:"commonName"`
	Latitude           *string `json:"latitude"`
	Longitude          *string `json:"longitude"`
	Depth              *string `json:"depth"`
	Habitat            *string `json:"habitat"`
	Country            *string `json:"country"`
	Locality           *string `json:"locality"`
	EventDate          *string `json:"eventDate"`
	IndividualCount    int64   `json:"individualCount"`
	ConservationStatus string  `json:"conservationStatus"`
	WaterBody          *string `json:"waterBody"`
	SamplingProtocol   *string `json:"samplingProtocol"`
}

// ExportResponse is the JSON export envelope.
type ExportResponse struct {
	Data       []ExportRow `json:"data"`
	Count      int         `json:"count"`
	ExportedAt time.Time   `json:"exportedAt"`
}

// Abnormality is an occurrence with an unusually high individual count.
type Abnormality struct {
	ScientificName   *string `json:"scientificName"`
	IndividualCount  int64   `json:"individualCount"`
	Locality         *string `json:"locality"`
	WaterBody        *string `json:"waterBody"`
	DecimalLatitude  *string `json:"decimalLatitude"`
	DecimalLongitude *string `json:"decimalLongitude"`
}

// NewAbnormality projects an occurrence onto the abnormality payload.
// Unparseable counts are reported as zero.
func NewAbnormality(o *Occurrence) Abnormality {
	count, _ := ParseCount(o.IndividualCount)
	return Abnormality{
		ScientificName:   o.ScientificName,
		IndividualCount:  count,
		Locality:         o.Locality,
		WaterBody:        o.WaterBody,
		DecimalLatitude:  o.DecimalLatitude,
		DecimalLongitude: o.DecimalLongitude,
	}
}

// OceanReading is a sea-surface condition sample for one location.
type OceanReading struct {
	Location     string    `json:"location"`
	Temperature  float64   `json:"temperature"`
	Salinity     float64   `json:"salinity"`
	CurrentSpeed float64   `json:"currentSpeed"`
	Timestamp    time.Time `json:"timestamp"`
}
