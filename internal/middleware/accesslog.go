// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/marinestats/internal/logging"
)

// AccessLog writes one log line per request. Server errors log at warn.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := newStatusRecorder(w)

		next.ServeHTTP(wrapper, r)

		logger := logging.Ctx(r.Context())
		event := logger.Debug()
		if wrapper.statusCode >= http.StatusInternalServerError {
			event = logger.Warn()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Int("bytes", wrapper.bytes).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	})
}
