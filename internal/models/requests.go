// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package models

import "strings"

// Export formats.
const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

// ExportQuery is the query string of GET /api/tableau/data-export.
type ExportQuery struct {
	Format    string `json:"format" validate:"oneof=json csv"`
	DateRange string `json:"dateRange" validate:"omitempty,daterange"`
	Species   string `json:"species" validate:"omitempty,max=256,regexp"`
}

// Filter converts the query into a store filter. A single date is treated
// as a lower bound.
func (q ExportQuery) Filter() ExportFilter {
	start, end, _ := strings.Cut(q.DateRange, ",")
	return ExportFilter{
		Start:   strings.TrimSpace(start),
		End:     strings.TrimSpace(end),
		Species: q.Species,
	}
}

// ImageProxyQuery is the query string of GET /api/image-proxy.
type ImageProxyQuery struct {
	ImageURL string `json:"imageUrl" validate:"required,http_url"`
}
