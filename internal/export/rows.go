// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package export

import (
	"hash/fnv"
	"time"

	"github.com/tomtom215/marinestats/internal/models"
)

// UnknownCommonName is reported when an occurrence has no vernacular name.
const UnknownCommonName = "Unknown"

// conservationStatuses are the IUCN Red List categories a placeholder
// status is drawn from.
var conservationStatuses = []string{
	"Least Concern",
	"Near Threatened",
	"Vulnerable",
	"Endangered",
	"Critically Endangered",
}

// ConservationStatus returns a placeholder IUCN category for a scientific
// name. The category is picked by an FNV-1a hash of the name over the five
// categories above, so it is stable across exports and processes but is not
// an IUCN assessment. An empty name still maps to a fixed category.
func ConservationStatus(scientificName string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(scientificName))
	return conservationStatuses[h.Sum32()%uint32(len(conservationStatuses))]
}

// NewRow projects an occurrence onto the export row.
func NewRow(o *models.Occurrence) models.ExportRow {
	commonName := UnknownCommonName
	if models.Present(o.VernacularName) {
		commonName = *o.VernacularName
	}
	count, ok := models.ParseCount(o.IndividualCount)
	if !ok {
		count = 1
	}

	return models.ExportRow{
		ID:                 o.RecordID,
		ScientificName:     o.ScientificName,
		CommonName:         commonName,
		Latitude:           o.DecimalLatitude,
		Longitude:          o.DecimalLongitude,
		Depth:              o.MinimumDepthInMeters,
		Habitat:            o.Habitat,
		Country:            o.Country,
		Locality:           o.Locality,
		EventDate:          o.EventDate,
		IndividualCount:    count,
		ConservationStatus: ConservationStatus(models.Text(o.ScientificName)),
		WaterBody:          o.WaterBody,
		SamplingProtocol:   o.SamplingProtocol,
	}
}

// NewRows projects every occurrence. The result is never nil.
func NewRows(occurrences []models.Occurrence) []models.ExportRow {
	rows := make([]models.ExportRow, 0, len(occurrences))
	for i := range occurrences {
		rows = append(rows, NewRow(&occurrences[i]))
	}
	return rows
}

// NewResponse wraps rows in the JSON export envelope.
func NewResponse(rows []models.ExportRow, now time.Time) *models.ExportResponse {
	return &models.ExportResponse{
		Data:       rows,
		Count:      len(rows),
		ExportedAt: now.UTC().Truncate(time.Millisecond),
	}
}
