// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package query

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/speedofwater/internal/models"
)

// Pipeline is an aggregation pipeline.
type Pipeline []bson.M

// Temporary fields added by pipelines.
const (
	violationDetails   = "__violation"
	contaminantDetails = "__contaminant"
	systemDetails      = "__system"
	beginDate          = "__begin"
)

// ViolationsForSystem returns every row of one system with reference-code
// descriptions joined, newest non-compliance period first. Missing reference
// rows leave the description fields null.
func ViolationsForSystem(pwsid string) Pipeline {
	return Pipeline{
		{"$match": SystemFilter(pwsid)},
		lookupReference(ref(FieldViolationCode), models.RefTypeViolation, violationDetails),
		lookupReference(ref(FieldContaminantCode), models.RefTypeContaminant, contaminantDetails),
		{"$addFields": bson.M{
			FieldViolationName:   firstOf(ref(violationDetails + "." + FieldValueDescription)),
			FieldContaminantName: firstOf(ref(contaminantDetails + "." + FieldValueDescription)),
		}},
		{"$project": bson.M{violationDetails: 0, contaminantDetails: 0}},
		{"$sort": bson.D{{Key: FieldNonComplianceBegin, Value: -1}}},
	}
}

// ViolationsByCategory groups rows by normalized violation code, ranks the
// groups by size with earliest-inserted group first on ties, keeps limit of
// them, and joins their descriptions.
func ViolationsByCategory(limit int) Pipeline {
	return Pipeline{
		{"$group": bson.M{
			"_id":       normalizedCode(ref(FieldViolationCode)),
			"count":     bson.M{"$sum": 1},
			"firstSeen": bson.M{"$min": "$_id"},
		}},
		{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "firstSeen", Value: 1}}},
		{"$limit": limit},
		lookupReference("$_id", models.RefTypeViolation, violationDetails),
		{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "firstSeen", Value: 1}}},
		{"$project": bson.M{
			"_id":      0,
			"code":     bson.M{"$toString": "$_id"},
			"count":    1,
			"category": bson.M{"$ifNull": bson.A{firstOf(ref(violationDetails + "." + FieldValueDescription)), models.UnknownViolationType}},
		}},
	}
}

// ViolationsByMonth buckets rows whose non-compliance begin date falls in
// [since, until) by calendar month (UTC), oldest first.
func ViolationsByMonth(since, until time.Time) Pipeline {
	return Pipeline{
		{"$addFields": bson.M{beginDate: asDate(ref(FieldNonComplianceBegin))}},
		{"$match": bson.M{beginDate: bson.M{"$gte": since, "$lt": until}}},
		{"$group": bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": ref(beginDate)},
				"month": bson.M{"$month": ref(beginDate)},
			},
			"violationCount": bson.M{"$sum": 1},
			"systems":        bson.M{"$addToSet": ref(FieldPWSID)},
		}},
		{"$project": bson.M{
			"_id":                 0,
			"year":                "$_id.year",
			"month":               "$_id.month",
			"violationCount":      1,
			"distinctSystemCount": bson.M{"$size": "$systems"},
		}},
		{"$sort": bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}}},
	}
}

// TopViolators ranks systems by number of rows, PWSID ascending on ties, and
// joins the raw system name and population.
func TopViolators(limit int) Pipeline {
	return Pipeline{
		{"$match": bson.M{FieldPWSID: present()}},
		{"$group": bson.M{"_id": ref(FieldPWSID), "violationCount": bson.M{"$sum": 1}}},
		{"$sort": bson.D{{Key: "violationCount", Value: -1}, {Key: "_id", Value: 1}}},
		{"$limit": limit},
		lookupSystem("_id", systemDetails),
		{"$project": bson.M{
			"_id":            0,
			FieldPWSID:       "$_id",
			"violationCount": 1,
			FieldSystemName:  firstOf(ref(systemDetails + "." + FieldSystemName)),
			FieldPopulation:  firstOf(ref(systemDetails + "." + FieldPopulation)),
		}},
		{"$sort": bson.D{{Key: "violationCount", Value: -1}, {Key: FieldPWSID, Value: 1}}},
	}
}

// SystemsInCounty lists the distinct systems serving a county with their raw
// name and population. Systems without a pub_water_systems document are kept.
func SystemsInCounty(county string) Pipeline {
	return Pipeline{
		{"$match": CountyFilter(county)},
		{"$match": bson.M{FieldPWSID: present()}},
		{"$group": bson.M{"_id": ref(FieldPWSID)}},
		lookupSystem("_id", systemDetails),
		{"$project": bson.M{
			"_id":           0,
			FieldPWSID:      "$_id",
			FieldSystemName: firstOf(ref(systemDetails + "." + FieldSystemName)),
			FieldPopulation: firstOf(ref(systemDetails + "." + FieldPopulation)),
		}},
		{"$sort": bson.D{{Key: FieldPWSID, Value: 1}}},
	}
}

// DistinctKnownSystems counts distinct PWSIDs among rows matching filter
// that have a pub_water_systems document.
func DistinctKnownSystems(filter bson.M) Pipeline {
	return Pipeline{
		{"$match": filter},
		{"$group": bson.M{"_id": ref(FieldPWSID)}},
		lookupSystem("_id", systemDetails),
		{"$match": bson.M{systemDetails: bson.M{"$ne": bson.A{}}}},
		{"$count": "n"},
	}
}

// SystemTotals counts systems and sums their population.
func SystemTotals() Pipeline {
	return Pipeline{
		{"$group": bson.M{
			"_id":        nil,
			"systems":    bson.M{"$sum": 1},
			"population": bson.M{"$sum": populationValue(ref(FieldPopulation))},
		}},
	}
}

// DistinctSystems counts distinct PWSIDs among rows matching filter.
func DistinctSystems(filter bson.M) Pipeline {
	return Pipeline{
		{"$match": filter},
		{"$group": bson.M{"_id": ref(FieldPWSID)}},
		{"$count": "n"},
	}
}
