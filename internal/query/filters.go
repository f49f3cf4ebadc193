// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package query

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/speedofwater/internal/models"
)

// absent matches missing, null, and empty-string values.
func absent() bson.M {
	return bson.M{"$in": bson.A{nil, ""}}
}

// present is the complement of absent.
func present() bson.M {
	return bson.M{"$nin": bson.A{nil, ""}}
}

// EnforcementOnlyFilter matches rows with no status and an enforcement
// action type code.
func EnforcementOnlyFilter() bson.M {
	return bson.M{
		FieldStatus:          absent(),
		FieldEnforcementType: present(),
	}
}

// ActiveFilter matches rows the classifier marks Active: not enforcement-only,
// and either an open status or no non-compliance end date.
func ActiveFilter() bson.M {
	return bson.M{
		"$nor": bson.A{EnforcementOnlyFilter()},
		"$or":  bson.A{
			bson.M{FieldStatus: bson.M{"$in": bson.A{models.StatusUnaddressed, models.StatusAddressed}}},
			bson.M{FieldNonComplianceEnd: absent()},
		},
	}
}

// HealthBasedActiveFilter matches active rows flagged health-based.
func HealthBasedActiveFilter() bson.M {
	return bson.M{"$and": bson.A{
		ActiveFilter(),
		bson.M{FieldHealthBased: models.HealthBasedYes},
	}}
}

// ResolvedFilter matches rows the classifier marks Resolved: a closed status
// and a non-compliance end date that is a date.
func ResolvedFilter() bson.M {
	return bson.M{
		FieldStatus: bson.M{"$in": bson.A{models.StatusResolved, models.StatusArchived}},
		"$expr":     bson.M{"$ne": bson.A{asDate(ref(FieldNonComplianceEnd)), nil}},
	}
}

// OpenEndedFilter matches rows with no non-compliance end date.
func OpenEndedFilter() bson.M {
	return bson.M{FieldNonComplianceEnd: absent()}
}

// ViolationFilter translates a models.ViolationFilter.
func ViolationFilter(f models.ViolationFilter) bson.M {
	switch f {
	case models.FilterActive:
		return ActiveFilter()
	case models.FilterHealthBasedActive:
		return HealthBasedActiveFilter()
	case models.FilterResolved:
		return ResolvedFilter()
	case models.FilterEnforcementOnly:
		return EnforcementOnlyFilter()
	case models.FilterOpenEnded:
		return OpenEndedFilter()
	default:
		return bson.M{}
	}
}

// SystemFilter matches rows belonging to any of the given systems.
func SystemFilter(pwsids ...string) bson.M {
	if len(pwsids) == 1 {
		return bson.M{FieldPWSID: pwsids[0]}
	}
	ids := make(bson.A, len(pwsids))
	for i, id := range pwsids {
		ids[i] = id
	}
	return bson.M{FieldPWSID: bson.M{"$in": ids}}
}

// SearchFilter matches systems whose name or PWSID contains q,
// case-insensitively. q is matched literally.
func SearchFilter(q string) bson.M {
	pattern := bson.M{"$regex": regexp.QuoteMeta(q), "$options": "i"}
	return bson.M{"$or": bson.A{
		bson.M{FieldSystemName: pattern},
		bson.M{FieldPWSID: pattern},
	}}
}

// CountyFilter matches geographic rows whose county equals name,
// case-insensitively.
func CountyFilter(name string) bson.M {
	return bson.M{FieldCounty: bson.M{
		"$regex":   "^" + regexp.QuoteMeta(name) + "$",
		"$options": "i",
	}}
}

// ClassifierProjection limits violation rows to the fields the classifier
// and rollups read.
func ClassifierProjection() bson.M {
	return bson.M{
		"_id":                 0,
		FieldPWSID:            1,
		FieldStatus:           1,
		FieldNonComplianceEnd: 1,
		FieldHealthBased:      1,
		FieldEnforcementType:  1,
	}
}
