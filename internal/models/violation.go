// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package models

// Violation status values found in VIOLATION_STATUS.
const (
	StatusUnaddressed = "Unaddressed"
	StatusAddressed   = "Addressed"
	StatusResolved    = "Resolved"
	StatusArchived    = "Archived"
)

// HealthBasedYes is the IS_HEALTH_BASED_IND value for health-based violations.
const HealthBasedYes = "Y"

// Reference code types in ref_code_values.
const (
	RefTypeViolation   = "VIOLATION_CODE"
	RefTypeContaminant = "CONTAMINANT_CODE"
)

// Fallback descriptions for codes with no reference row.
const (
	UnknownViolationType = "Unknown violation type"
	UnknownContaminant   = "Unknown contaminant"
)

// ViolationState is the lifecycle state assigned by the classifier.
type ViolationState string

// Violation states.
const (
	StateActive   ViolationState = "Active"
	StateResolved ViolationState = "Resolved"
	StateUnknown  ViolationState = "Unknown"
)

// ViolationRecord is one row of violations_enforcement. A row is either a
// violation (has a status) or an enforcement action attached to one; the
// source data repeats violation fields on every enforcement row.
type ViolationRecord struct {
	PWSID                 Text `bson:"PWSID" json:"PWSID"`
	PWSName               Text `bson:"PWS_NAME" json:"PWS_NAME,omitempty"`
	ViolationID           Text `bson:"VIOLATION_ID" json:"VIOLATION_ID"`
	ViolationCode         Code `bson:"VIOLATION_CODE" json:"VIOLATION_CODE"`
	ContaminantCode       Code `bson:"CONTAMINANT_CODE" json:"CONTAMINANT_CODE,omitempty"`
	ComplianceBegin       Date `bson:"COMPL_PER_BEGIN_DATE" json:"COMPL_PER_BEGIN_DATE"`
	ComplianceEnd         Date `bson:"COMPL_PER_END_DATE" json:"COMPL_PER_END_DATE"`
	NonComplianceBegin    Date `bson:"NON_COMPL_PER_BEGIN_DATE" json:"NON_COMPL_PER_BEGIN_DATE"`
	NonComplianceEnd      Date `bson:"NON_COMPL_PER_END_DATE" json:"NON_COMPL_PER_END_DATE"`
	Status                Text `bson:"VIOLATION_STATUS" json:"VIOLATION_STATUS,omitempty"`
	HealthBased           Text `bson:"IS_HEALTH_BASED_IND" json:"IS_HEALTH_BASED_IND,omitempty"`
	EnforcementID         Text `bson:"ENFORCEMENT_ID" json:"ENFORCEMENT_ID,omitempty"`
	EnforcementDate       Date `bson:"ENFORCEMENT_DATE" json:"ENFORCEMENT_DATE"`
	EnforcementActionType Text `bson:"ENFORCEMENT_ACTION_TYPE_CODE" json:"ENFORCEMENT_ACTION_TYPE_CODE,omitempty"`
	Severity              Text `bson:"SEVERITY_IND_CODE" json:"SEVERITY_IND_CODE,omitempty"`

	// Joined from ref_code_values; empty when no reference row exists.
	ViolationName   Text `bson:"VIOLATION_NAME,omitempty" json:"VIOLATION_NAME,omitempty"`
	ContaminantName Text `bson:"CONTAMINANT_NAME,omitempty" json:"CONTAMINANT_NAME,omitempty"`
}

// ClassifiedViolation is a deduplicated violation history entry.
type ClassifiedViolation struct {
	ViolationRecord
	State            ViolationState `json:"status"`
	IsHealthBased    bool           `json:"isHealthBased"`
	Category         string         `json:"category"`
	EnforcementCount int            `json:"ENFORCEMENT_COUNT"`
}

// EnforcementAction is an enforcement-only row with a readable action name.
type EnforcementAction struct {
	ViolationRecord
	ActionName string `json:"actionName"`
}

// ReferenceCode maps a categorical code to its description.
type ReferenceCode struct {
	ValueType   Text `bson:"VALUE_TYPE" json:"VALUE_TYPE"`
	Code        Code `bson:"VALUE_CODE" json:"VALUE_CODE"`
	Description Text `bson:"VALUE_DESCRIPTION" json:"VALUE_DESCRIPTION"`
}

// ViolationFilter selects a subset of violations_enforcement rows. Every
// filter has one store-side translation and one in-process predicate, and
// both follow the classifier.
type ViolationFilter int

// Violation filters.
const (
	FilterAll ViolationFilter = iota
	FilterActive
	FilterHealthBasedActive
	FilterResolved
	FilterEnforcementOnly
	FilterOpenEnded
)

// String returns the filter name used in logs and metrics labels.
func (f ViolationFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterActive:
		return "active"
	case FilterHealthBasedActive:
		return "health_based_active"
	case FilterResolved:
		return "resolved"
	case FilterEnforcementOnly:
		return "enforcement_only"
	case FilterOpenEnded:
		return "open_ended"
	default:
		return "unknown"
	}
}
