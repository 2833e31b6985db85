// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

/*
Package metrics provides Prometheus instrumentation for Marinestats.

All collectors are registered with the default registry through promauto
and exposed at /metrics by the API router.

# Available Metrics

Store:
  - store_query_duration_seconds{backend,operation}
  - store_query_errors_total{backend,operation}

Statistics:
  - stats_compute_duration_seconds
  - stats_subquery_errors_total{subquery}
  - stats_cache_hits_total, stats_cache_misses_total

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Tableau:
  - tableau_request_duration_seconds{operation}
  - tableau_requests_total{operation,result}
  - tableau_auth_attempts_total{method,result}
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Image proxy and seeding:
  - image_proxy_requests_total{result}, image_proxy_bytes_total
  - seed_rows_total{outcome}, seed_duration_seconds

# Usage

	start := time.Now()
	rows, err := db.QueryContext(ctx, query)
	metrics.RecordStoreQuery("duckdb", "group_count", time.Since(start), err)
*/
package metrics
