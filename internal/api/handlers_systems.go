// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/speedofwater/internal/validation"
)

// SearchSystems handles water system search
//
// @Summary Search water systems
// @Description Case-insensitive substring match on system name or PWSID. An empty query returns an empty list. Results are capped by api.search_limit.
// @Tags Systems
// @Produce json
// @Param q query string false "Name or PWSID fragment" maxlength(100)
// @Success 200 {object} WaterSystemsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /systems [get]
func (h *Handler) SearchSystems(w http.ResponseWriter, r *http.Request) {
	req := validation.SearchRequest{Query: r.URL.Query().Get("q")}
	if err := validateRequest(&req); err != nil {
		respondServiceError(w, r, err)
		return
	}

	systems, err := h.dashboard.SearchSystems(r.Context(), req.Query)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, WaterSystemsResponse{WaterSystems: systems})
}

// SystemDetail handles the single-system view
//
// @Summary Get a water system with its violation history
// @Description Returns the system record, its rollup counts, the deduplicated violation history split by state, and enforcement-only actions.
// @Tags Systems
// @Produce json
// @Param pwsid path string true "Public water system ID"
// @Success 200 {object} models.SystemDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /systems/{pwsid} [get]
func (h *Handler) SystemDetail(w http.ResponseWriter, r *http.Request) {
	pwsid, ok := h.pwsidParam(w, r)
	if !ok {
		return
	}

	detail, err := h.dashboard.SystemDetail(r.Context(), pwsid)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, detail)
}

// SystemViolations handles a system's violation history
//
// @Summary List a water system's violations
// @Description Deduplicated, classified violation history, newest first. Unknown systems have an empty history.
// @Tags Systems
// @Produce json
// @Param pwsid path string true "Public water system ID"
// @Success 200 {object} ViolationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /systems/{pwsid}/violations [get]
func (h *Handler) SystemViolations(w http.ResponseWriter, r *http.Request) {
	pwsid, ok := h.pwsidParam(w, r)
	if !ok {
		return
	}

	violations, err := h.dashboard.ViolationsForSystem(r.Context(), pwsid)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, ViolationsResponse{Violations: violations})
}

// SystemsByCounty handles the county listing
//
// @Summary List water systems serving a county
// @Description Exact, case-insensitive county match. Systems are ordered by active violations, then name.
// @Tags Systems
// @Produce json
// @Param name query string true "County name" maxlength(100)
// @Success 200 {object} CountySystemsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /systems-by-county [get]
func (h *Handler) SystemsByCounty(w http.ResponseWriter, r *http.Request) {
	req := validation.CountyRequest{Name: strings.TrimSpace(r.URL.Query().Get("name"))}
	if err := validateRequest(&req); err != nil {
		respondServiceError(w, r, err)
		return
	}

	systems, err := h.dashboard.SystemsInCounty(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, CountySystemsResponse{WaterSystems: systems})
}

// pwsidParam reads and validates the {pwsid} path parameter, writing a
// 400 response when it is invalid.
func (h *Handler) pwsidParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	req := validation.SystemRequest{PWSID: validation.NormalizePWSID(chi.URLParam(r, "pwsid"))}
	if err := validateRequest(&req); err != nil {
		respondServiceError(w, r, err)
		return "", false
	}
	return req.PWSID, true
}
