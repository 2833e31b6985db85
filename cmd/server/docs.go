// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// @title Marinestats API
// @version 1.0
// @description Aggregate statistics over marine species occurrence records, Tableau Server
// @description integration for embedded dashboards, and helper endpoints for the dashboard frontend.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address on /api routes.
// @description Health probes under /api/health are not rate limited.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/marinestats/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /api
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks and occurrence statistics
//
// @tag.name Tableau
// @tag.description Tableau Server authentication, workbook listing and diagnostics
//
// @tag.name Export
// @tag.description Occurrence export as JSON or CSV
//
// @tag.name Marine
// @tag.description Copernicus marine readings and the image proxy
package main
