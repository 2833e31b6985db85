// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

/*
Package middleware provides the HTTP middleware shared by every route.

Key Components:

  - RequestID: accepts or generates an X-Request-ID and stores it in the
    request context for logging.Ctx.
  - PrometheusMetrics: request counts, durations and in-flight gauge,
    labelled by chi route pattern to keep label cardinality bounded.
  - AccessLog: one zerolog line per request.

All three have the func(http.Handler) http.Handler shape expected by chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Route("/api", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	})
*/
package middleware
