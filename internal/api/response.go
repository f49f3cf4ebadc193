// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package api

import (
	"time"

	"github.com/tomtom215/speedofwater/internal/models"
)

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeTimeout            = "TIMEOUT"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// Error is a human-readable message
	Error string `json:"error"`

	// Code is a machine-readable error code
	Code string `json:"code,omitempty"`

	// RequestID is the request ID for tracing
	RequestID string `json:"request_id,omitempty"`
}

// WaterSystemsResponse wraps system lists.
type WaterSystemsResponse struct {
	WaterSystems []models.WaterSystem `json:"waterSystems"`
}

// CountySystemsResponse wraps the county listing.
type CountySystemsResponse struct {
	WaterSystems []models.SystemWithRollup `json:"waterSystems"`
}

// ViolationsResponse wraps a system's violation history.
type ViolationsResponse struct {
	Violations []models.ClassifiedViolation `json:"violations"`
}

// HealthStatus reports process and store health.
type HealthStatus struct {
	Status         string    `json:"status"` // healthy or degraded
	StoreConnected bool      `json:"storeConnected"`
	Uptime         float64   `json:"uptime"` // seconds
	Timestamp      time.Time `json:"timestamp"`
}
