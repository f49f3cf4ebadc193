// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package models

// UnknownSystemName is shown for systems referenced by violation or
// geography rows that have no pub_water_systems document.
const UnknownSystemName = "Unknown System"

// WaterSystem is a public water system from pub_water_systems.
type WaterSystem struct {
	PWSID          Text  `bson:"PWSID" json:"PWSID"`
	Name           Text  `bson:"PWS_NAME" json:"PWS_NAME"`
	Population     Count `bson:"POPULATION_SERVED_COUNT" json:"POPULATION_SERVED_COUNT"`
	TypeCode       Text  `bson:"PWS_TYPE_CODE" json:"PWS_TYPE_CODE,omitempty"`
	OwnerName      Text  `bson:"OWNER_NAME" json:"OWNER_NAME,omitempty"`
	OrgName        Text  `bson:"ORG_NAME" json:"ORG_NAME,omitempty"`
	OwnerPhone     Text  `bson:"OWNER_PHONE" json:"OWNER_PHONE,omitempty"`
	OwnerEmail     Text  `bson:"OWNER_EMAIL" json:"OWNER_EMAIL,omitempty"`
	CityName       Text  `bson:"CITY_NAME" json:"CITY_NAME,omitempty"`
	StateCode      Text  `bson:"STATE_CODE" json:"STATE_CODE,omitempty"`
	LastSubmission Text  `bson:"SUBMISSIONYEARQUARTER" json:"SUBMISSIONYEARQUARTER,omitempty"`
}

// DisplayName returns the system name or the unknown-system fallback.
func (w WaterSystem) DisplayName() string {
	if w.Name.IsEmpty() {
		return UnknownSystemName
	}
	return w.Name.String()
}

// GeographicArea links a system to the county and city it serves.
type GeographicArea struct {
	PWSID    Text `bson:"PWSID" json:"PWSID"`
	County   Text `bson:"COUNTY_SERVED" json:"COUNTY_SERVED"`
	City     Text `bson:"CITY_SERVED" json:"CITY_SERVED,omitempty"`
	AreaType Text `bson:"AREA_TYPE_CODE" json:"AREA_TYPE_CODE,omitempty"`
}

// SystemRef is the minimal system identity used for listings. Defaults for
// missing system documents have already been applied.
type SystemRef struct {
	PWSID      string `bson:"PWSID" json:"PWSID"`
	Name       string `bson:"name" json:"name"`
	Population int64  `bson:"population" json:"population"`
}

// SystemRollup holds per-system violation counters.
type SystemRollup struct {
	ActiveViolationCount   int `json:"activeViolationCount"`
	EnforcementActionCount int `json:"enforcementActionCount"`
	TotalViolationCount    int `json:"totalViolationCount"`
}

// SystemWithRollup is a county listing row.
type SystemWithRollup struct {
	PWSID      string `json:"PWSID"`
	Name       string `json:"name"`
	Population int64  `json:"population"`
	SystemRollup
}

// SystemTotals aggregates the pub_water_systems collection.
type SystemTotals struct {
	Systems    int64 `bson:"systems"`
	Population int64 `bson:"population"`
}
