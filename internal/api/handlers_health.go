// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/speedofwater/internal/logging"
)

// Health handles health check requests
//
// @Summary Get system health status
// @Description Reports store connectivity and uptime. Always 200; status is "degraded" when the store ping fails.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	connected := h.dashboard.Ping(r.Context()) == nil

	status := "healthy"
	if !connected {
		status = "degraded"
	}

	respondJSON(w, r, http.StatusOK, HealthStatus{
		Status:         status,
		StoreConnected: connected,
		Uptime:         time.Since(h.startTime).Seconds(),
		Timestamp:      time.Now().UTC(),
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the store answers a ping
//
// @Summary Kubernetes readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} ErrorResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	if err := h.dashboard.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgUnavailable)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"ready": true,
	})
}
