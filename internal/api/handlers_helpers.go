// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/models"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

// sanitizeLogValue escapes control characters so user-supplied values
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// respondJSON writes v as JSON with status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes {"error": message} and logs err, if any, against
// the request.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("path", sanitizeLogValue(r.URL.Path)).
			Int("status", status).
			Str("error", sanitizeLogValue(err.Error())).
			Msg(message)
	}
	respondJSON(w, status, &models.ErrorResponse{Error: message})
}

// decodeOptionalJSON decodes the request body into v. An empty body
// leaves v untouched.
func decodeOptionalJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
