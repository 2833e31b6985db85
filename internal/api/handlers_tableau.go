// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package api

import (
	"errors"
	"net/http"

	tableaumodels "github.com/tomtom215/marinestats/internal/models/tableau"
	"github.com/tomtom215/marinestats/internal/tableau"
	"github.com/tomtom215/marinestats/internal/validation"
)

// TableauAuth signs the dashboard in to Tableau.
//
// @Summary Authenticate with Tableau
// @Description Tries a personal access token, then username and password, then a trusted ticket
// @Tags Tableau
// @Accept json
// @Produce json
// @Param request body tableau.AuthRequest false "Trusted ticket user"
// @Success 200 {object} tableau.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /tableau/auth [post]
func (h *Handler) TableauAuth(w http.ResponseWriter, r *http.Request) {
	var req tableaumodels.AuthRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, msgInvalidBody, err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, r, http.StatusBadRequest, verr.Error(), nil)
		return
	}

	auth, err := h.tableau.Authenticate(r.Context(), req.Username)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, msgAuthFailed+err.Error(), err)
		return
	}
	respondJSON(w, http.StatusOK, auth.Response(h.tableau.Config().ServerURL))
}

// TableauWorkbooks lists the workbooks of the configured site.
//
// @Summary List Tableau workbooks
// @Tags Tableau
// @Produce json
// @Success 200 {array} tableau.Workbook
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /tableau/workbooks [get]
func (h *Handler) TableauWorkbooks(w http.ResponseWriter, r *http.Request) {
	workbooks, err := h.tableau.Workbooks(r.Context())
	if err != nil {
		var authErr *tableau.AuthError
		if errors.As(err, &authErr) {
			respondError(w, r, http.StatusUnauthorized, msgAuthFailed+err.Error(), err)
			return
		}
		respondError(w, r, http.StatusInternalServerError, msgWorkbooksFailed+err.Error(), err)
		return
	}
	respondJSON(w, http.StatusOK, workbooks)
}

// TableauTestConnection checks configuration, reachability and access.
//
// @Summary Test the Tableau connection
// @Tags Tableau
// @Produce json
// @Success 200 {object} tableau.ConnectionTestSuccess
// @Failure 400 {object} tableau.ConnectionTestResponse
// @Failure 500 {object} tableau.ConnectionTestResponse
// @Router /tableau/test-connection [get]
func (h *Handler) TableauTestConnection(w http.ResponseWriter, r *http.Request) {
	if missing := h.tableau.Config().Missing(); len(missing) > 0 {
		respondJSON(w, http.StatusBadRequest, &tableaumodels.ConnectionTestResponse{
			Success: false,
			Message: msgConfigIncomplete,
			Missing: missing,
		})
		return
	}

	result, err := h.tableau.TestConnection(r.Context())
	if err != nil {
		message := msgConnectionTestFailed + err.Error()
		var probeErr *tableau.ProbeError
		if errors.As(err, &probeErr) {
			message = probeErr.Message
		}
		respondJSON(w, http.StatusInternalServerError, &tableaumodels.ConnectionTestResponse{
			Success: false,
			Message: message,
		})
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// TableauDebug returns a step-by-step diagnostic report.
//
// @Summary Tableau integration diagnostics
// @Tags Tableau
// @Produce json
// @Success 200 {object} tableau.DebugResponse
// @Router /tableau/debug [get]
func (h *Handler) TableauDebug(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.tableau.Debug(r.Context()))
}
