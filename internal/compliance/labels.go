// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package compliance

import "strings"

// Violation categories derived from violation descriptions.
const (
	CategoryMonitoring         = "Monitoring & Reporting"
	CategoryContaminantLevel   = "Maximum Contaminant Level"
	CategoryTreatmentTechnique = "Treatment Technique"
	CategoryPublicNotification = "Public Notification"
	CategoryOther              = "Other"
)

var enforcementActionNames = map[string]string{
	"SIA": "Sanitary Inspection Action",
	"SIE": "Sanitary Inspection Enforcement",
	"NOV": "Notice of Violation",
	"AO":  "Administrative Order",
}

// EnforcementActionName returns a readable name for an enforcement action
// type code. Unrecognized codes are returned unchanged.
func EnforcementActionName(code string) string {
	code = strings.TrimSpace(code)
	if name, ok := enforcementActionNames[strings.ToUpper(code)]; ok {
		return name
	}
	if code == "" {
		return "Unknown action"
	}
	return code
}

// ViolationCategory buckets a violation description into a rule family.
func ViolationCategory(description string) string {
	switch {
	case strings.Contains(description, "Monitoring"), strings.Contains(description, "Reporting"):
		return CategoryMonitoring
	case strings.Contains(description, "Maximum Contaminant Level"), strings.Contains(description, "MCL"):
		return CategoryContaminantLevel
	case strings.Contains(description, "Treatment Technique"):
		return CategoryTreatmentTechnique
	case strings.Contains(description, "Public Notification"):
		return CategoryPublicNotification
	default:
		return CategoryOther
	}
}
