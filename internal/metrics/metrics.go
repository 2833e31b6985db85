// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store Metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Duration of occurrence store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_query_errors_total",
			Help: "Total number of occurrence store query errors",
		},
		[]string{"backend", "operation"},
	)

	// Statistics Metrics
	StatsComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stats_compute_duration_seconds",
			Help:    "Time to compute a full statistics snapshot",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
	)

	StatsSubqueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_subquery_errors_total",
			Help: "Total number of failed statistics sub-queries",
		},
		[]string{"subquery"},
	)

	StatsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_cache_hits_total",
			Help: "Statistics snapshots served from cache",
		},
	)

	StatsCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_cache_misses_total",
			Help: "Statistics snapshots computed because the cache was cold",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Tableau Client Metrics
	TableauRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tableau_request_duration_seconds",
			Help:    "Duration of Tableau REST calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	TableauRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tableau_requests_total",
			Help: "Total number of Tableau REST calls",
		},
		[]string{"operation", "result"}, // result: "success", "error"
	)

	TableauAuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tableau_auth_attempts_total",
			Help: "Tableau authentication attempts by method",
		},
		[]string{"method", "result"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Image Proxy Metrics
	ImageProxyRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_proxy_requests_total",
			Help: "Image proxy requests by outcome",
		},
		[]string{"result"}, // "ok", "upstream_error", "too_large", "transport_error", "invalid"
	)

	ImageProxyBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "image_proxy_bytes_total",
			Help: "Bytes streamed to clients by the image proxy",
		},
	)

	// Seeding Metrics
	SeedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_rows_total",
			Help: "CSV rows handled by the seeder",
		},
		[]string{"outcome"}, // "parsed", "inserted", "skipped"
	)

	SeedDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seed_duration_seconds",
			Help:    "Duration of a full reseed in seconds",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120, 300},
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version", "backend"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordStoreQuery records an occurrence store query
func RecordStoreQuery(backend, operation string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		StoreQueryErrors.WithLabelValues(backend, operation).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordTableauRequest records one Tableau REST call.
func RecordTableauRequest(operation string, duration time.Duration, err error) {
	TableauRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	result := "success"
	if err != nil {
		result = "error"
	}
	TableauRequestsTotal.WithLabelValues(operation, result).Inc()
}

// RecordTableauAuth records an authentication attempt for method
// ("pat", "credentials" or "trusted").
func RecordTableauAuth(method string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	TableauAuthAttempts.WithLabelValues(method, result).Inc()
}

// RecordSeed records the outcome of a seeding run.
func RecordSeed(parsed, inserted, skipped int, duration time.Duration) {
	SeedRows.WithLabelValues("parsed").Add(float64(parsed))
	SeedRows.WithLabelValues("inserted").Add(float64(inserted))
	SeedRows.WithLabelValues("skipped").Add(float64(skipped))
	SeedDuration.Observe(duration.Seconds())
}
