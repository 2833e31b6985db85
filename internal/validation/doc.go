// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the HTTP handlers and the seed
// importer. Field names in messages come from the json tag, so errors read
// in the dashboard's vocabulary ("decimalLatitude must be a valid latitude").
//
// # Custom Tags
//
//   - regexp: the string compiles as a Go regular expression
//   - daterange: "start,end" with at most one comma
//
// # Usage
//
//	q := models.ExportQuery{Format: r.URL.Query().Get("format")}
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    respondError(w, http.StatusBadRequest, verr.Error())
//	    return
//	}
package validation
