// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package query

import "go.mongodb.org/mongo-driver/bson"

// StatusDistribution counts rows per VIOLATION_STATUS. Missing and null
// statuses are grouped with the empty string.
func StatusDistribution() Pipeline {
	return Pipeline{
		{"$group": bson.M{
			"_id":   bson.M{"$toString": bson.M{"$ifNull": bson.A{ref(FieldStatus), ""}}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
		{"$project": bson.M{"_id": 0, "status": "$_id", "count": 1}},
	}
}

// TopCounties ranks counties by the number of distinct systems serving them.
func TopCounties(limit int) Pipeline {
	return Pipeline{
		{"$match": bson.M{FieldCounty: present()}},
		{"$group": bson.M{
			"_id":     bson.M{"$toString": ref(FieldCounty)},
			"systems": bson.M{"$addToSet": ref(FieldPWSID)},
		}},
		{"$project": bson.M{"_id": 0, "county": "$_id", "systems": bson.M{"$size": "$systems"}}},
		{"$sort": bson.D{{Key: "systems", Value: -1}, {Key: "county", Value: 1}}},
		{"$limit": limit},
	}
}

// SystemsWithoutGeography counts pub_water_systems documents that no
// geographic_areas row references.
func SystemsWithoutGeography() Pipeline {
	return Pipeline{
		{"$lookup": bson.M{
			"from":         CollectionGeography,
			"localField":   FieldPWSID,
			"foreignField": FieldPWSID,
			"as":           "__geo",
		}},
		{"$match": bson.M{"__geo": bson.M{"$size": 0}}},
		{"$count": "n"},
	}
}

// GeographyWithoutSystems counts geographic_areas rows whose PWSID has no
// pub_water_systems document.
func GeographyWithoutSystems() Pipeline {
	return Pipeline{
		lookupSystem(FieldPWSID, systemDetails),
		{"$match": bson.M{systemDetails: bson.M{"$size": 0}}},
		{"$count": "n"},
	}
}
