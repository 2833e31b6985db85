// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package api

import (
	"context"
	"net/http"
)

// FishStats returns the statistics snapshot.
//
// @Summary Get occurrence statistics
// @Description Overview counters, top species, habitat and locality distributions, depth statistics and daily activity
// @Tags Statistics
// @Produce json
// @Success 200 {object} models.Statistics
// @Failure 500 {object} models.ErrorResponse
// @Router /fish/stats [get]
func (h *Handler) FishStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.statsTimeout())
	defer cancel()

	snapshot, err := h.stats.Compute(ctx)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, msgStatsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}
