// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package query

// Collections in the speedofwater database.
const (
	CollectionViolations = "violations_enforcement"
	CollectionSystems    = "pub_water_systems"
	CollectionGeography  = "geographic_areas"
	CollectionReference  = "ref_code_values"
)

// Document fields.
const (
	FieldPWSID              = "PWSID"
	FieldSystemName         = "PWS_NAME"
	FieldPopulation         = "POPULATION_SERVED_COUNT"
	FieldViolationID        = "VIOLATION_ID"
	FieldViolationCode      = "VIOLATION_CODE"
	FieldContaminantCode    = "CONTAMINANT_CODE"
	FieldComplianceBegin    = "COMPL_PER_BEGIN_DATE"
	FieldComplianceEnd      = "COMPL_PER_END_DATE"
	FieldNonComplianceBegin = "NON_COMPL_PER_BEGIN_DATE"
	FieldNonComplianceEnd   = "NON_COMPL_PER_END_DATE"
	FieldStatus             = "VIOLATION_STATUS"
	FieldHealthBased        = "IS_HEALTH_BASED_IND"
	FieldEnforcementType    = "ENFORCEMENT_ACTION_TYPE_CODE"
	FieldEnforcementDate    = "ENFORCEMENT_DATE"
	FieldCounty             = "COUNTY_SERVED"
	FieldValueType          = "VALUE_TYPE"
	FieldValueCode          = "VALUE_CODE"
	FieldValueDescription   = "VALUE_DESCRIPTION"
	FieldViolationName      = "VIOLATION_NAME"
	FieldContaminantName    = "CONTAMINANT_NAME"
)

func ref(field string) string { return "$" + field }
