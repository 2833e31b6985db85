// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Package tableau integrates the dashboard with Tableau Server and Tableau
// Cloud over the REST API.
//
// # Layers
//
//   - Client: raw REST calls (sign-in, trusted tickets, sign-out, workbook
//     listing, serverinfo) with an outbound rate limiter
//   - CircuitBreakerClient: wraps any API with sony/gobreaker so an outage
//     fails fast; 4xx replies do not trip the breaker
//   - Service: the dashboard operations built on an API (authentication
//     strategy chain, workbook listing, connection test, debug report)
//
// # Authentication Strategy
//
// Authenticate tries, in order:
//  1. personal access token sign-in when TABLEAU_PERSONAL_ACCESS_TOKEN is set
//  2. username and password sign-in when both are set
//  3. a trusted ticket for the requested user, TABLEAU_TRUSTED_USER, or "guest"
//
// Sign-in responses may be JSON or XML; the content type decides which
// decoder is used.
//
// # Example
//
//	client := tableau.NewCircuitBreakerClient(
//	    tableau.NewClient(&cfg.Tableau),
//	    tableau.DefaultBreakerSettings(),
//	)
//	svc := tableau.NewService(client, &cfg.Tableau)
//	auth, err := svc.Authenticate(ctx, "")
package tableau
