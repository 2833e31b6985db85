// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/marinestats/internal/models"
	tableaumodels "github.com/tomtom215/marinestats/internal/models/tableau"
)

func strPtr(s string) *string { return &s }

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

func TestValidateExportQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     models.ExportQuery
		wantField string
	}{
		{"json default", models.ExportQuery{Format: "json"}, ""},
		{"csv with filters", models.ExportQuery{Format: "csv", DateRange: "2023-01-01,2023-12-31", Species: "^thunnus"}, ""},
		{"bad format", models.ExportQuery{Format: "xlsx"}, "format"},
		{"bad regex", models.ExportQuery{Format: "json", Species: "(unclosed"}, "species"},
		{"too many dates", models.ExportQuery{Format: "json", DateRange: "a,b,c"}, "dateRange"},
		{"long pattern", models.ExportQuery{Format: "json", Species: strings.Repeat("a", 257)}, "species"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.query)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("ValidateStruct() = nil, want failure on %s", tt.wantField)
			}
			if !verr.HasField(tt.wantField) {
				t.Errorf("failures %v do not include %s", verr.Error(), tt.wantField)
			}
		})
	}
}

func TestValidateExportQueryMessages(t *testing.T) {
	verr := ValidateStruct(&models.ExportQuery{Format: "xml", Species: "["})
	if verr == nil {
		t.Fatal("expected failure")
	}
	want := "format must be one of: json csv; species must be a valid regular expression"
	if verr.Error() != want {
		t.Errorf("Error() = %q, want %q", verr.Error(), want)
	}
	if len(verr.Errors()) != 2 || verr.Errors()[0].Tag() != "oneof" || verr.Errors()[0].Param() != "json csv" {
		t.Errorf("Errors() = %+v", verr.Errors())
	}
}

func TestValidateImageProxyQuery(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://example.org/fish.jpg", true},
		{"http://example.org/a?b=c", true},
		{"", false},
		{"ftp://example.org/fish.jpg", false},
		{"/relative/fish.jpg", false},
		{"not a url", false},
	}

	for _, tt := range tests {
		verr := ValidateStruct(&models.ImageProxyQuery{ImageURL: tt.url})
		if (verr == nil) != tt.valid {
			t.Errorf("ValidateStruct(%q) = %v, want valid=%v", tt.url, verr, tt.valid)
		}
	}
}

func TestValidateOccurrence(t *testing.T) {
	tests := []struct {
		name      string
		in        models.Occurrence
		wantField string
	}{
		{"empty record", models.Occurrence{}, ""},
		{"valid coordinates", models.Occurrence{DecimalLatitude: strPtr("8.52"), DecimalLongitude: strPtr("-76.9"), IndividualCount: strPtr("3")}, ""},
		{"latitude out of range", models.Occurrence{DecimalLatitude: strPtr("91")}, "decimalLatitude"},
		{"longitude not a number", models.Occurrence{DecimalLongitude: strPtr("east")}, "decimalLongitude"},
		{"count not numeric", models.Occurrence{IndividualCount: strPtr("many")}, "individualCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.in)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v", verr)
				}
				return
			}
			if verr == nil || !verr.HasField(tt.wantField) {
				t.Errorf("ValidateStruct() = %v, want failure on %s", verr, tt.wantField)
			}
		})
	}
}

func TestValidateAuthRequest(t *testing.T) {
	if verr := ValidateStruct(&tableaumodels.AuthRequest{}); verr != nil {
		t.Errorf("empty username should be valid: %v", verr)
	}
	verr := ValidateStruct(&tableaumodels.AuthRequest{Username: strings.Repeat("u", 256)})
	if verr == nil || verr.Error() != "username must be at most 255 characters" {
		t.Errorf("ValidateStruct() = %v", verr)
	}
}

func TestRequestValidationErrorEmpty(t *testing.T) {
	ve := &RequestValidationError{}
	if ve.Error() != "validation failed" || ve.HasField("x") {
		t.Errorf("empty error = %q", ve.Error())
	}
}
