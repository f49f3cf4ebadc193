// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package models

import "time"

// CategoryCount is one row of the violations-by-type summary.
type CategoryCount struct {
	Code       string  `bson:"code" json:"code"`
	Category   string  `bson:"category" json:"category"`
	Count      int64   `bson:"count" json:"count"`
	Percentage float64 `bson:"-" json:"percentage"`
}

// MonthCount is one calendar month of the violations-by-month summary.
type MonthCount struct {
	YearMonth           string `bson:"-" json:"yearMonth"`
	Year                int    `bson:"year" json:"year"`
	Month               int    `bson:"month" json:"month"`
	ViolationCount      int64  `bson:"violationCount" json:"violationCount"`
	DistinctSystemCount int64  `bson:"distinctSystemCount" json:"distinctSystemCount"`
}

// TopViolator is a system ranked by number of violation rows.
type TopViolator struct {
	PWSID          string `bson:"PWSID" json:"PWSID"`
	Name           string `bson:"name" json:"name"`
	ViolationCount int64  `bson:"violationCount" json:"violationCount"`
	Population     int64  `bson:"population" json:"population"`
}

// RegulatorySummary is the statewide dashboard payload.
type RegulatorySummary struct {
	TotalSystems        int64           `json:"totalSystems"`
	TotalViolations     int64           `json:"totalViolations"`
	TotalPopulation     int64           `json:"totalPopulation"`
	ActiveViolations    int64           `json:"activeViolations"`
	HealthBasedActive   int64           `json:"healthBasedActiveViolations"`
	NonCompliantSystems int64           `json:"nonCompliantSystems"`
	ViolationsByType    []CategoryCount `json:"violationsByType"`
	ViolationsByMonth   []MonthCount    `json:"violationsByMonth"`
	TopViolators        []TopViolator   `json:"topViolators"`
	ComplianceRate      int             `json:"complianceRate"`
	RiskScore           int             `json:"riskScore"`
	GeneratedAt         time.Time       `json:"generatedAt"`
}

// SystemDetail is the public detail page payload for one system.
type SystemDetail struct {
	WaterSystem        WaterSystem           `json:"waterSystem"`
	Rollup             SystemRollup          `json:"rollup"`
	ActiveViolations   []ClassifiedViolation `json:"activeViolations"`
	ResolvedViolations []ClassifiedViolation `json:"resolvedViolations"`
	OtherViolations    []ClassifiedViolation `json:"otherViolations"`
	EnforcementActions []EnforcementAction   `json:"enforcementActions"`
}

// StatusCount is one VIOLATION_STATUS value and how often it occurs.
type StatusCount struct {
	Status     string  `bson:"status" json:"status"`
	Count      int64   `bson:"count" json:"count"`
	Percentage float64 `bson:"-" json:"percentage"`
}

// CountyCount is the number of distinct systems serving a county.
type CountyCount struct {
	County  string `bson:"county" json:"county"`
	Systems int64  `bson:"systems" json:"systems"`
}

// DataQualityReport summarizes the health of the loaded dataset.
type DataQualityReport struct {
	TotalRecords            int64         `json:"totalRecords"`
	StatusDistribution      []StatusCount `json:"statusDistribution"`
	OpenEndedRecords        int64         `json:"openEndedRecords"`
	ActiveViolations        int64         `json:"activeViolations"`
	ResolvedViolations      int64         `json:"resolvedViolations"`
	UnknownViolations       int64         `json:"unknownViolations"`
	EnforcementOnlyRecords  int64         `json:"enforcementOnlyRecords"`
	SystemsWithViolations   int64         `json:"systemsWithViolations"`
	AvgViolationsPerSystem  float64       `json:"avgViolationsPerSystem"`
	TopViolators            []TopViolator `json:"topViolators"`
	GeographicRecords       int64         `json:"geographicRecords"`
	TopCounties             []CountyCount `json:"topCounties"`
	SystemsWithoutGeography int64         `json:"systemsWithoutGeography"`
	GeographyWithoutSystems int64         `json:"geographyWithoutSystems"`
	GeneratedAt             time.Time     `json:"generatedAt"`
}

// CoverageCounts reports referential gaps between systems and geography.
type CoverageCounts struct {
	GeographicRecords       int64
	SystemsWithViolations   int64
	SystemsWithoutGeography int64
	GeographyWithoutSystems int64
}
