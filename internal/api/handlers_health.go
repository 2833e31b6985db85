// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/marinestats/internal/metrics"
	"github.com/tomtom215/marinestats/internal/models"
)

// Version is reported by the health endpoint. cmd/server overrides it
// with the build version.
var Version = "1.0.0"

// pingTimeout bounds the store ping of the health checks.
const pingTimeout = 2 * time.Second

func (h *Handler) storeReachable(ctx context.Context) bool {
	if h.store == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return h.store.Ping(ctx) == nil
}

// Health reports store connectivity, Tableau configuration and uptime.
//
// @Summary Get system health status
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	connected := h.storeReachable(r.Context())

	status := "healthy"
	if !connected {
		status = "degraded"
	}

	backend := ""
	if h.store != nil {
		backend = h.store.Backend()
	}

	uptime := time.Since(h.startTime).Seconds()
	metrics.AppUptime.Set(uptime)

	respondJSON(w, http.StatusOK, &models.HealthStatus{
		Status:            status,
		Version:           Version,
		Backend:           backend,
		DatabaseConnected: connected,
		TableauConfigured: h.tableau.Config().Configured(),
		Uptime:            uptime,
	})
}

// HealthLive is the liveness probe. It never touches dependencies.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady is the readiness probe: 200 once the store answers a ping.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.storeReachable(r.Context()) {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "store unreachable",
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
