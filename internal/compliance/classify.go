// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package compliance

import (
	"github.com/tomtom215/speedofwater/internal/models"
)

// Classify returns the lifecycle state of one record. It depends only on the
// status, non-compliance end date, and enforcement action type fields, which
// are compared exactly as stored.
func Classify(r models.ViolationRecord) models.ViolationState {
	if IsEnforcementOnly(r) {
		return models.StateUnknown
	}

	status := string(r.Status)
	if status == models.StatusUnaddressed || status == models.StatusAddressed {
		return models.StateActive
	}

	end := r.NonComplianceEnd
	if end.Malformed() {
		return models.StateUnknown
	}
	if end.IsNull() {
		return models.StateActive
	}

	if status == models.StatusResolved || status == models.StatusArchived {
		return models.StateResolved
	}
	return models.StateUnknown
}

// IsHealthBased reports whether the health-based indicator is exactly "Y".
func IsHealthBased(r models.ViolationRecord) bool {
	return string(r.HealthBased) == models.HealthBasedYes
}

// IsEnforcementOnly reports whether the row records a regulator action rather
// than a violation: no status but an enforcement action type code.
func IsEnforcementOnly(r models.ViolationRecord) bool {
	return r.Status == "" && r.EnforcementActionType != ""
}

// IsActive is shorthand for Classify(r) == StateActive.
func IsActive(r models.ViolationRecord) bool {
	return Classify(r) == models.StateActive
}

// Matches evaluates a store filter in process. It is the reference the
// store-side filters are tested against.
func Matches(f models.ViolationFilter, r models.ViolationRecord) bool {
	switch f {
	case models.FilterAll:
		return true
	case models.FilterActive:
		return IsActive(r)
	case models.FilterHealthBasedActive:
		return IsActive(r) && IsHealthBased(r)
	case models.FilterResolved:
		return Classify(r) == models.StateResolved
	case models.FilterEnforcementOnly:
		return IsEnforcementOnly(r)
	case models.FilterOpenEnded:
		return r.NonComplianceEnd.IsNull()
	default:
		return false
	}
}
