// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package query

import "go.mongodb.org/mongo-driver/bson"

// asDate converts a field holding a BSON date or a date string to a date,
// and everything else to null.
func asDate(expr interface{}) bson.M {
	return bson.M{"$cond": bson.A{
		bson.M{"$in": bson.A{bson.M{"$type": expr}, bson.A{"date", "string"}}},
		bson.M{"$convert": bson.M{"input": expr, "to": "date", "onError": nil, "onNull": nil}},
		nil,
	}}
}

// normalizedCode mirrors models.NormalizeCode: integral codes become longs so
// "02" and 2 compare equal, and other codes stay strings.
func normalizedCode(expr interface{}) bson.M {
	return bson.M{"$let": bson.M{
		"vars": bson.M{"s": bson.M{"$trim": bson.M{"input": bson.M{"$toString": expr}}}},
		"in":   bson.M{"$cond": bson.A{
			bson.M{"$in": bson.A{"$$s", bson.A{nil, ""}}},
			nil,
			bson.M{"$convert": bson.M{"input": "$$s", "to": "long", "onError": "$$s", "onNull": nil}},
		}},
	}}
}

// populationValue mirrors models.Count: integers and numeric strings count,
// doubles are truncated, and negatives or other types are zero.
func populationValue(expr interface{}) bson.M {
	return bson.M{"$cond": bson.A{
		bson.M{"$in": bson.A{bson.M{"$type": expr}, bson.A{"int", "long", "double", "string"}}},
		bson.M{"$max": bson.A{
			bson.M{"$convert": bson.M{"input": expr, "to": "long", "onError": 0, "onNull": 0}},
			0,
		}},
		0,
	}}
}

// firstOf returns the first element of an array-valued path, or null.
func firstOf(path string) bson.M {
	return bson.M{"$arrayElemAt": bson.A{path, 0}}
}

// lookupReference joins the description of the code found at expr from
// ref_code_values rows of refType. Missing rows produce an empty array.
func lookupReference(expr interface{}, refType, as string) bson.M {
	return bson.M{"$lookup": bson.M{
		"from":     CollectionReference,
		"let":      bson.M{"code": normalizedCode(expr)},
		"pipeline": bson.A{
			bson.M{"$match": bson.M{FieldValueType: refType}},
			bson.M{"$match": bson.M{"$expr": bson.M{"$and": bson.A{
				bson.M{"$ne": bson.A{"$$code", nil}},
				bson.M{"$eq": bson.A{normalizedCode(ref(FieldValueCode)), "$$code"}},
			}}}},
			bson.M{"$limit": 1},
			bson.M{"$project": bson.M{"_id": 0, FieldValueDescription: 1}},
		},
		"as": as,
	}}
}

// lookupSystem joins pub_water_systems on PWSID found at localField.
func lookupSystem(localField, as string) bson.M {
	return bson.M{"$lookup": bson.M{
		"from":         CollectionSystems,
		"localField":   localField,
		"foreignField": FieldPWSID,
		"as":           as,
	}}
}
