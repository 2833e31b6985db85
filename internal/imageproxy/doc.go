// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Package imageproxy fetches remote species images on behalf of the
// dashboard so the browser can display them without cross-origin issues.
//
// Requests go out with a desktop browser User-Agent, since several image
// hosts refuse unknown clients. Outbound calls share a token bucket
// (golang.org/x/time/rate) and each body is capped at a configured size.
package imageproxy
