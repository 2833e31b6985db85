// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/tomtom215/marinestats/internal/imageproxy"
	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/marine"
	"github.com/tomtom215/marinestats/internal/metrics"
	"github.com/tomtom215/marinestats/internal/models"
	"github.com/tomtom215/marinestats/internal/validation"
)

// Copernicus returns sea-surface readings for the monitored seas.
//
// @Summary Get ocean conditions
// @Tags Marine
// @Produce json
// @Success 200 {array} models.OceanReading
// @Failure 500 {object} models.ErrorResponse
// @Router /copernicus [get]
func (h *Handler) Copernicus(w http.ResponseWriter, r *http.Request) {
	readings, err := h.marine.Readings(r.Context())
	if err != nil {
		if errors.Is(err, marine.ErrCredentialsMissing) {
			respondError(w, r, http.StatusInternalServerError, msgCopernicusNoCreds, nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, msgCopernicusFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, readings)
}

// ImageProxy relays a remote image.
//
// @Summary Proxy a species image
// @Tags Marine
// @Produce octet-stream
// @Param imageUrl query string true "Absolute http(s) image URL"
// @Success 200 {file} binary
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /image-proxy [get]
func (h *Handler) ImageProxy(w http.ResponseWriter, r *http.Request) {
	query := models.ImageProxyQuery{ImageURL: r.URL.Query().Get("imageUrl")}
	if verr := validation.ValidateStruct(&query); verr != nil {
		metrics.ImageProxyRequests.WithLabelValues("invalid").Inc()
		respondError(w, r, http.StatusBadRequest, msgImageURLRequired, nil)
		return
	}

	img, err := h.images.Fetch(r.Context(), query.ImageURL)
	if err != nil {
		var upstream *imageproxy.UpstreamError
		if errors.As(err, &upstream) {
			metrics.ImageProxyRequests.WithLabelValues("upstream_error").Inc()
			respondError(w, r, upstream.StatusCode, msgImageFetchFailed, err)
			return
		}
		if errors.Is(err, imageproxy.ErrTooLarge) {
			metrics.ImageProxyRequests.WithLabelValues("too_large").Inc()
			respondError(w, r, http.StatusBadGateway, msgImageTooLarge, err)
			return
		}
		metrics.ImageProxyRequests.WithLabelValues("transport_error").Inc()
		respondError(w, r, http.StatusInternalServerError, msgInternal, err)
		return
	}
	defer img.Body.Close()

	if img.ContentType != "" {
		w.Header().Set("Content-Type", img.ContentType)
	}
	w.Header().Set("Content-Length", strconv.FormatInt(img.Size, 10))
	w.WriteHeader(http.StatusOK)

	n, err := io.Copy(w, img.Body)
	metrics.ImageProxyRequests.WithLabelValues("ok").Inc()
	metrics.ImageProxyBytes.Add(float64(n))
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Int64("bytes", n).Msg("Image proxy copy interrupted")
	}
}
