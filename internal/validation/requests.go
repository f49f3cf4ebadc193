// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package validation

import "strings"

// SearchRequest is GET /systems. An empty query is valid and matches nothing.
type SearchRequest struct {
	Query string `query:"q" validate:"max=100"`
}

// SystemRequest is any route keyed by {pwsid}.
type SystemRequest struct {
	PWSID string `path:"pwsid" validate:"required,pwsid"`
}

// CountyRequest is GET /systems-by-county.
type CountyRequest struct {
	Name string `query:"name" validate:"required,max=100"`
}

// SummaryRequest is GET /regulatory-summary after defaults are applied.
type SummaryRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Months int `query:"months" validate:"min=1,max=240"`
}

// NormalizePWSID trims and upper-cases a system identifier.
func NormalizePWSID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
