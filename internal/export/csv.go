// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tomtom215/marinestats/internal/models"
)

// CSVFilename is the attachment name sent with CSV exports.
const CSVFilename = "marine_species_data.csv"

// Columns is the CSV header, in JSON field order.
var Columns = []string{
	"id",
	"scientificName",
	"commonName",
	"latitude",
	"longitude",
	"depth",
	"habitat",
	"country",
	"locality",
	"eventDate",
	"individualCount",
	"conservationStatus",
	"waterBody",
	"samplingProtocol",
}

// WriteCSV writes rows with a header line. No rows writes nothing at all.
func WriteCSV(w io.Writer, rows []models.ExportRow) error {
	if len(rows) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range rows {
		if err := cw.Write(csvRecord(&rows[i])); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// csvRecord flattens a row in Columns order. Absent values are empty cells.
func csvRecord(r *models.ExportRow) []string {
	return []string{
		r.ID,
		models.Text(r.ScientificName),
		r.CommonName,
		models.Text(r.Latitude),
		models.Text(r.Longitude),
		models.Text(r.Depth),
		models.Text(r.Habitat),
		models.Text(r.Country),
		models.Text(r.Locality),
		models.Text(r.EventDate),
		strconv.FormatInt(r.IndividualCount, 10),
		r.ConservationStatus,
		models.Text(r.WaterBody),
		models.Text(r.SamplingProtocol),
	}
}
