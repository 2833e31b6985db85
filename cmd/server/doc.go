// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

/*
Package main is the entry point for the Marinestats HTTP server.

Marinestats serves aggregate statistics over a marine species occurrence
dataset, proxies a Tableau Server for embedded dashboards, and exposes a
few helper endpoints (data export, abnormal records, Copernicus marine
readings, image proxy) for the dashboard frontend.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("marinestats")
	├── DataSupervisor ("data-layer")
	│   └── Stats Warmer (only when STATS_CACHE_TTL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Store: DuckDB (default) or MongoDB, selected by DATABASE_BACKEND
 4. Handlers: statistics aggregator, Tableau client, marine data service
 5. Supervisor Tree: Suture v4 process supervision
 6. HTTP Server: Chi router with middleware stack

# Configuration

Common environment variables:

	PORT                           HTTP port (default 3000)
	DATABASE_BACKEND               duckdb or mongodb
	DUCKDB_PATH                    DuckDB file path
	MONGODB_URI                    MongoDB connection string
	TABLEAU_SERVER_URL             Tableau Server base URL
	TABLEAU_SITE_ID                Tableau site content URL
	TABLEAU_TOKEN_NAME             personal access token name
	TABLEAU_PERSONAL_ACCESS_TOKEN  personal access token secret
	COPERNICUS_MARINE_USERNAME     Copernicus Marine account
	COPERNICUS_MARINE_PASSWORD     Copernicus Marine password
	LOG_LEVEL                      trace, debug, info, warn, error

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT,
then the store is closed.

# Example Usage

	export DUCKDB_PATH=./data/marinestats.duckdb
	marinestats-seed seed --csv ./data/occurrence.csv
	./marinestats
*/
package main
