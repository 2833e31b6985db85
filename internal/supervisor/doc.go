// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

/*
Package supervisor runs the long-lived parts of marinestats under a
suture v4 supervisor tree.

	marinestats (root)
	├── data-layer    stats snapshot warmer
	└── api-layer     HTTP server

A service that returns an error is restarted with suture's backoff; a
failure in the data layer never takes the HTTP server down. Supervisor
events are logged through sutureslog, which main wires to zerolog via
logging.NewSlogLogger.

Service wrappers live in the services subpackage.
*/
package supervisor
