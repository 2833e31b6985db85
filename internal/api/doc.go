// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

/*
Package api provides the HTTP surface consumed by the marine dashboard.

Routes are mounted on a Chi router (Router.Setup):

	GET  /api/health, /api/health/live, /api/health/ready
	GET  /api/fish/stats
	POST /api/tableau/auth
	GET  /api/tableau/workbooks
	GET  /api/tableau/test-connection
	GET  /api/tableau/debug
	GET  /api/tableau/data-export
	GET  /api/abnormalities
	GET  /api/copernicus
	GET  /api/image-proxy
	GET  /metrics
	GET  /swagger/*

Response bodies are plain JSON objects in the shapes the dashboard already
reads. Failures are written as {"error": "<message>"}; the underlying
cause is logged with the request ID and only surfaced for the Tableau
routes, whose messages carry the upstream status and body.

The /api group is rate limited per client IP (go-chi/httprate) and
instrumented with Prometheus request metrics keyed by route pattern.
*/
package api
