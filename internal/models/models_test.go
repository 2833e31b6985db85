// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func strPtr(s string) *string { return &s }

func TestParseCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  *string
		want   int64
		wantOK bool
	}{
		{nil, 0, false},
		{strPtr(""), 0, false},
		{strPtr("42"), 42, true},
		{strPtr("12 adults"), 12, true},
		{strPtr("3.9"), 3, true},
		{strPtr("-2"), -2, true},
		{strPtr("many"), 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseCount(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseCount(%q) = (%d, %v), want (%d, %v)", Text(tt.input), got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := map[float64]float64{
		7.5:      7.5,
		1.005001: 1.01,
		2.344:    2.34,
		2.345001: 2.35,
		-1.2551:  -1.26,
		100:      100,
	}
	for in, want := range tests {
		if got := Round2(in); got != want {
			t.Errorf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Thunnus albacares":              "Thunnus",
		"Epinephelus":                    "Epinephelus",
		"  Lutjanus   argentimaculatus ": "Lutjanus",
		"":                               UnknownSpecies,
		"   ":                            UnknownSpecies,
	}
	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEventDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"2023-04-05", "2023-04-05", true},
		{"2023/04/05", "2023-04-05", true},
		{"2023-04-05T10:30:00Z", "2023-04-05", true},
		{"2023-04-05T10:30:00.123Z", "2023-04-05", true},
		{"2023-04-05T02:00:00+05:30", "2023-04-04", true},
		{"2023-04-05T10:30", "2023-04-05", true},
		{"2023-04-05 10:30:00", "2023-04-05", true},
		{"2023-04", "2023-04-01", true},
		{"2023", "2023-01-01", true},
		{"2023-04-05/2023-04-09", "2023-04-05", true},
		{" 2023-04-05 ", "2023-04-05", true},
		{"", "", false},
		{"yesterday", "", false},
		{"05/04/2023", "", false},
		{"2023-13-01", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := EventDay(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("EventDay(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGroupByDay(t *testing.T) {
	t.Parallel()

	dates := []string{
		"2023-04-05T10:00:00Z",
		"2023-04-05",
		"2023-04-07",
		"not a date",
		"2023-04-06",
		"2023-04-07T23:59:59Z",
	}

	got := GroupByDay(dates, 2)
	want := []DateCount{
		{Date: "2023-04-07", Count: 2},
		{Date: "2023-04-06", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("GroupByDay() returned %d groups, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("group %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got := GroupByDay(nil, 30); len(got) != 0 {
		t.Errorf("GroupByDay(nil) = %+v, want empty", got)
	}
}

func TestOccurrenceSetAndValues(t *testing.T) {
	t.Parallel()

	var o Occurrence
	if !o.Set("scientificName", "Thunnus albacares") {
		t.Fatal("Set(scientificName) returned false")
	}
	if !o.Set("image_links", "https://example.org/a.jpg") {
		t.Fatal("Set(image_links) returned false")
	}
	if !o.Set("habitat", "") {
		t.Fatal("Set(habitat) returned false")
	}
	if o.Set("notAField", "x") {
		t.Error("Set(notAField) should return false")
	}

	if Text(o.ScientificName) != "Thunnus albacares" {
		t.Errorf("ScientificName = %q", Text(o.ScientificName))
	}
	if o.Habitat != nil {
		t.Error("empty value should leave Habitat nil")
	}

	values := o.Values()
	if len(values) != len(OccurrenceFields) {
		t.Fatalf("Values() has %d entries, want %d", len(values), len(OccurrenceFields))
	}
	for i, name := range OccurrenceFields {
		switch name {
		case "scientificName", "image_links":
			if values[i] == nil {
				t.Errorf("value for %s should be set", name)
			}
		default:
			if values[i] != nil {
				t.Errorf("value for %s should be nil, got %q", name, *values[i])
			}
		}
	}
}

func TestOccurrenceJSONKeys(t *testing.T) {
	t.Parallel()

	o := Occurrence{
		RecordID:       "7",
		ScientificName: strPtr("Thunnus albacares"),
		ImageLinks:     strPtr("a.jpg"),
	}
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"scientificName":"Thunnus albacares","image_links":"a.jpg"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestNewDepthStatistics(t *testing.T) {
	t.Parallel()

	if NewDepthStatistics(nil) != nil {
		t.Error("nil aggregate should give nil statistics")
	}
	if NewDepthStatistics(&DepthAggregate{}) != nil {
		t.Error("empty aggregate should give nil statistics")
	}

	got := NewDepthStatistics(&DepthAggregate{Records: 3, AvgMin: 1.23456, AvgMax: 9.8765, Min: 0.123456, Max: 20.98765})
	want := DepthStatistics{AverageMinDepth: 1.23, AverageMaxDepth: 9.88, MinRecordedDepth: 0.123456, MaxRecordedDepth: 20.98765}
	if got == nil || *got != want {
		t.Errorf("NewDepthStatistics() = %+v, want %+v", got, want)
	}
}

func TestNewAbnormality(t *testing.T) {
	t.Parallel()

	o := &Occurrence{
		ScientificName:  strPtr("Sardinella longiceps"),
		IndividualCount: strPtr("n/a"),
		Locality:        strPtr("Kochi"),
	}
	a := NewAbnormality(o)
	if a.IndividualCount != 0 {
		t.Errorf("IndividualCount = %d, want 0 for unparseable input", a.IndividualCount)
	}
	if Text(a.Locality) != "Kochi" {
		t.Errorf("Locality = %q", Text(a.Locality))
	}
}

func TestExportFilterHasDateRange(t *testing.T) {
	t.Parallel()

	if (ExportFilter{}).HasDateRange() {
		t.Error("empty filter should not have a date range")
	}
	if !(ExportFilter{Start: "2020-01-01"}).HasDateRange() {
		t.Error("start only should count as a date range")
	}
}
