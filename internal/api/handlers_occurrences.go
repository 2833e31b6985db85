// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/tomtom215/marinestats/internal/export"
	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/models"
	"github.com/tomtom215/marinestats/internal/validation"
)

// DataExport exports occurrences for Tableau ingestion.
//
// @Summary Export occurrence data
// @Description Rows are filtered by an inclusive eventDate range and a case-insensitive scientific name pattern
// @Tags Tableau
// @Produce json,text/csv
// @Param format query string false "json (default) or csv"
// @Param dateRange query string false "start,end"
// @Param species query string false "Regular expression on scientificName"
// @Success 200 {object} models.ExportResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /tableau/data-export [get]
func (h *Handler) DataExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := models.ExportQuery{
		Format:    q.Get("format"),
		DateRange: q.Get("dateRange"),
		Species:   q.Get("species"),
	}
	if query.Format == "" {
		query.Format = models.ExportFormatJSON
	}
	if verr := validation.ValidateStruct(&query); verr != nil {
		respondError(w, r, http.StatusBadRequest, verr.Error(), nil)
		return
	}

	records, err := h.store.ExportOccurrences(r.Context(), query.Filter())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, msgExportFailed, err)
		return
	}
	rows := export.NewRows(records)

	if query.Format == models.ExportFormatJSON {
		respondJSON(w, http.StatusOK, export.NewResponse(rows, time.Now()))
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		respondError(w, r, http.StatusInternalServerError, msgExportFailed, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.CSVFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write CSV export")
	}
}

// AbnormalitiesResponse is the body of GET /api/abnormalities.
type AbnormalitiesResponse struct {
	Abnormalities []models.Abnormality `json:"abnormalities"`
}

// Abnormalities lists the records with the highest individual counts.
//
// @Summary Get abnormal observations
// @Description The five records with the largest individualCount
// @Tags Occurrences
// @Produce json
// @Success 200 {object} api.AbnormalitiesResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /abnormalities [get]
func (h *Handler) Abnormalities(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.TopByIndividualCount(r.Context(), abnormalityLimit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, msgAbnormalitiesFailed, err)
		return
	}

	resp := AbnormalitiesResponse{Abnormalities: make([]models.Abnormality, 0, len(records))}
	for i := range records {
		resp.Abnormalities = append(resp.Abnormalities, models.NewAbnormality(&records[i]))
	}
	respondJSON(w, http.StatusOK, &resp)
}
