// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/speedofwater/internal/store"
	"github.com/tomtom215/speedofwater/internal/validation"
)

// Messages for errors whose cause is not shown to clients.
const (
	msgInternal    = "An internal error occurred"
	msgUnavailable = "The data store is temporarily unavailable"
	msgNotFound    = "Water system not found"
	msgTimeout     = "The request timed out"
)

// apiError is the status, code and client-facing message for an error.
type apiError struct {
	status  int
	code    string
	message string
}

// classifyError maps service errors onto HTTP responses.
func classifyError(err error) apiError {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		return apiError{http.StatusBadRequest, ErrCodeValidationFailed, verr.Error()}
	case errors.Is(err, store.ErrNotFound):
		return apiError{http.StatusNotFound, ErrCodeNotFound, msgNotFound}
	case errors.Is(err, store.ErrUnavailable):
		return apiError{http.StatusServiceUnavailable, ErrCodeServiceUnavailable, msgUnavailable}
	case errors.Is(err, context.DeadlineExceeded):
		return apiError{http.StatusGatewayTimeout, ErrCodeTimeout, msgTimeout}
	default:
		return apiError{http.StatusInternalServerError, ErrCodeInternalError, msgInternal}
	}
}
