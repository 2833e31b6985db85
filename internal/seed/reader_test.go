// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/marinestats/internal/models"
)

const sampleCSV = "\ufeffscientificName,decimalLatitude,decimalLongitude,individualCount,locality,ImageLinks,recordedBy\n" +
	"Thunnus albacares,8.5,76.9,12,\"Kochi, Kerala\",https://img.example/1.jpg,A. Kumar\n" +
	"\n" +
	",,,,,,\n" +
	"Sardinella longiceps,,,,Kollam\n"

func TestReadCSV(t *testing.T) {
	t.Parallel()

	records, err := ReadCSV(context.Background(), strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2 (blank rows skipped)", len(records))
	}

	first := records[0]
	if models.Text(first.ScientificName) != "Thunnus albacares" {
		t.Errorf("ScientificName = %q; BOM not stripped from header?", models.Text(first.ScientificName))
	}
	if models.Text(first.Locality) != "Kochi, Kerala" || models.Text(first.IndividualCount) != "12" {
		t.Errorf("first = %+v", first)
	}
	if models.Text(first.ImageLinks) != "https://img.example/1.jpg" {
		t.Errorf("ImageLinks = %q", models.Text(first.ImageLinks))
	}

	second := records[1]
	if second.DecimalLatitude != nil || second.IndividualCount != nil || second.ImageLinks != nil {
		t.Errorf("empty and missing cells should be absent: %+v", second)
	}
	if models.Text(second.Locality) != "Kollam" {
		t.Errorf("Locality = %q", models.Text(second.Locality))
	}
}

func TestReadCSVNoHeader(t *testing.T) {
	t.Parallel()

	if _, err := ReadCSV(context.Background(), strings.NewReader("")); !errors.Is(err, ErrNoHeader) {
		t.Errorf("error = %v, want ErrNoHeader", err)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	t.Parallel()

	records, err := ReadCSV(context.Background(), strings.NewReader("scientificName,locality\n"))
	if err != nil || len(records) != 0 {
		t.Errorf("ReadCSV() = %v, %v", records, err)
	}
}

func TestReadCSVCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ReadCSV(ctx, strings.NewReader(sampleCSV)); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestColumnField(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"scientificName": "scientificName",
		" waterBody ":    "waterBody",
		"ImageLinks":     "image_links",
		"image_links":    "image_links",
		"recordedBy":     "",
		"ScientificName": "",
		"\ufeffhabitat":  "habitat",
	}
	for in, want := range tests {
		if got := columnField(in); got != want {
			t.Errorf("columnField(%q) = %q, want %q", in, got, want)
		}
	}
}
