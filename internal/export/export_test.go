// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package export

import (
	"bytes"
	"encoding/csv"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/marinestats/internal/models"
)

func strPtr(s string) *string { return &s }

func TestNewRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		in             models.Occurrence
		wantCommonName string
		wantCount      int64
	}{
		{
			name:           "full record",
			in:             models.Occurrence{VernacularName: strPtr("Yellowfin tuna"), IndividualCount: strPtr("12")},
			wantCommonName: "Yellowfin tuna",
			wantCount:      12,
		},
		{"missing count", models.Occurrence{}, UnknownCommonName, 1},
		{"invalid count", models.Occurrence{IndividualCount: strPtr("many")}, UnknownCommonName, 1},
		{"zero count kept", models.Occurrence{IndividualCount: strPtr("0")}, UnknownCommonName, 0},
		{"empty vernacular", models.Occurrence{VernacularName: strPtr("")}, UnknownCommonName, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			row := NewRow(&tt.in)
			if row.CommonName != tt.wantCommonName {
				t.Errorf("CommonName = %q, want %q", row.CommonName, tt.wantCommonName)
			}
			if row.IndividualCount != tt.wantCount {
				t.Errorf("IndividualCount = %d, want %d", row.IndividualCount, tt.wantCount)
			}
		})
	}
}

func TestNewRowCopiesFields(t *testing.T) {
	t.Parallel()

	o := models.Occurrence{
		RecordID:             "42",
		ScientificName:       strPtr("Thunnus albacares"),
		DecimalLatitude:      strPtr("8.5"),
		DecimalLongitude:     strPtr("76.9"),
		MinimumDepthInMeters: strPtr("5"),
		MaximumDepthInMeters: strPtr("50"),
		WaterBody:            strPtr("Arabian Sea"),
	}
	row := NewRow(&o)

	if row.ID != "42" || *row.Depth != "5" || *row.Latitude != "8.5" || *row.WaterBody != "Arabian Sea" {
		t.Errorf("row = %+v", row)
	}
	if row.Habitat != nil {
		t.Error("absent habitat should stay nil")
	}
	if row.ConservationStatus != ConservationStatus("Thunnus albacares") {
		t.Error("conservation status should depend only on the name")
	}
}

func TestConservationStatusDeterministic(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, name := range []string{"", "Thunnus albacares", "Sardinella longiceps", "Rastrelliger kanagurta", "Carcharhinus limbatus", "Chanos chanos"} {
		first := ConservationStatus(name)
		if !slices.Contains(conservationStatuses, first) {
			t.Fatalf("ConservationStatus(%q) = %q, not an IUCN category", name, first)
		}
		if again := ConservationStatus(name); again != first {
			t.Errorf("ConservationStatus(%q) changed: %q then %q", name, first, again)
		}
		seen[first] = true
	}
	if len(seen) < 2 {
		t.Errorf("all names mapped to one category: %v", seen)
	}
}

func TestConservationStatusStableAcrossReleases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"", "Near Threatened"},
		{"Thunnus albacares", "Near Threatened"},
		{"Chanos chanos", "Vulnerable"},
		{"Carcharhinus limbatus", "Vulnerable"},
	}
	for _, tt := range tests {
		if got := ConservationStatus(tt.name); got != tt.want {
			t.Errorf("ConservationStatus(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	rows := NewRows([]models.Occurrence{
		{RecordID: "1", ScientificName: strPtr("Thunnus albacares"), Locality: strPtr("Kochi, Kerala")},
		{RecordID: "2", IndividualCount: strPtr("3")},
	})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want header + 2", len(records))
	}
	if !slices.Equal(records[0], Columns) {
		t.Errorf("header = %v", records[0])
	}
	if records[1][8] != "Kochi, Kerala" || records[1][10] != "1" {
		t.Errorf("row 1 = %v", records[1])
	}
	if records[2][1] != "" || records[2][2] != UnknownCommonName || records[2][10] != "3" {
		t.Errorf("row 2 = %v", records[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, NewRows(nil)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestNewResponse(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.FixedZone("IST", 19800))
	resp := NewResponse(NewRows(nil), now)
	if resp.Count != 0 || resp.Data == nil {
		t.Errorf("resp = %+v", resp)
	}
	if resp.ExportedAt.Location() != time.UTC || resp.ExportedAt.Nanosecond() != 123000000 {
		t.Errorf("ExportedAt = %v", resp.ExportedAt)
	}
}
