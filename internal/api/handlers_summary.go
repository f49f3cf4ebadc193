// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package api

import (
	"net/http"

	"github.com/tomtom215/speedofwater/internal/validation"
)

// RegulatorySummary handles the statewide summary
//
// @Summary Statewide compliance summary
// @Description Totals, active and health-based counts, violations by type and month, top violators, compliance rate and risk score. Cached per (limit, months).
// @Tags Summary
// @Produce json
// @Param limit query int false "Length of ranked lists" minimum(1) maximum(100) default(10)
// @Param months query int false "Months in the trend window" minimum(1) maximum(240) default(12)
// @Success 200 {object} models.RegulatorySummary
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /regulatory-summary [get]
func (h *Handler) RegulatorySummary(w http.ResponseWriter, r *http.Request) {
	limit, err := getIntParam(r, "limit", h.api.DefaultTopLimit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	months, err := getIntParam(r, "months", h.api.DefaultMonthsBack)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	req := validation.SummaryRequest{Limit: limit, Months: months}
	if err := validateRequest(&req); err != nil {
		respondServiceError(w, r, err)
		return
	}

	summary, err := h.dashboard.RegulatorySummary(r.Context(), req.Limit, req.Months)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, summary)
}

// DataQuality handles the data-quality report
//
// @Summary Data-quality report
// @Description Record counts by classifier state, status distribution, open-ended records, coverage gaps between systems and geography.
// @Tags Summary
// @Produce json
// @Success 200 {object} models.DataQualityReport
// @Failure 503 {object} ErrorResponse
// @Router /data-quality [get]
func (h *Handler) DataQuality(w http.ResponseWriter, r *http.Request) {
	report, err := h.dashboard.DataQuality(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, report)
}
