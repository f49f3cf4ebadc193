// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/speedofwater/internal/models"
	"github.com/tomtom215/speedofwater/internal/query"
)

// Documents renders the dataset as raw documents keyed by collection, in the
// shape the ingest command writes them. Empty text is omitted, null dates
// are written as null, and dates that were read from text stay text.
func (d Dataset) Documents() map[string][]bson.M {
	out := map[string][]bson.M{
		query.CollectionSystems:    make([]bson.M, 0, len(d.Systems)),
		query.CollectionViolations: make([]bson.M, 0, len(d.Violations)),
		query.CollectionGeography:  make([]bson.M, 0, len(d.Geography)),
		query.CollectionReference:  make([]bson.M, 0, len(d.References)),
	}

	for _, s := range d.Systems {
		doc := bson.M{}
		putText(doc, query.FieldPWSID, s.PWSID)
		putText(doc, query.FieldSystemName, s.Name)
		if s.Population.Valid {
			doc[query.FieldPopulation] = s.Population.Value
		}
		putText(doc, "PWS_TYPE_CODE", s.TypeCode)
		putText(doc, "OWNER_NAME", s.OwnerName)
		putText(doc, "ORG_NAME", s.OrgName)
		putText(doc, "OWNER_PHONE", s.OwnerPhone)
		putText(doc, "OWNER_EMAIL", s.OwnerEmail)
		putText(doc, "CITY_NAME", s.CityName)
		putText(doc, "STATE_CODE", s.StateCode)
		putText(doc, "SUBMISSIONYEARQUARTER", s.LastSubmission)
		out[query.CollectionSystems] = append(out[query.CollectionSystems], doc)
	}

	for _, v := range d.Violations {
		doc := bson.M{}
		putText(doc, query.FieldPWSID, v.PWSID)
		putText(doc, query.FieldViolationID, v.ViolationID)
		putText(doc, query.FieldViolationCode, models.Text(v.ViolationCode))
		putText(doc, query.FieldContaminantCode, models.Text(v.ContaminantCode))
		putDate(doc, query.FieldComplianceBegin, v.ComplianceBegin)
		putDate(doc, query.FieldComplianceEnd, v.ComplianceEnd)
		putDate(doc, query.FieldNonComplianceBegin, v.NonComplianceBegin)
		putDate(doc, query.FieldNonComplianceEnd, v.NonComplianceEnd)
		putText(doc, query.FieldStatus, v.Status)
		putText(doc, query.FieldHealthBased, v.HealthBased)
		putText(doc, "ENFORCEMENT_ID", v.EnforcementID)
		putDate(doc, query.FieldEnforcementDate, v.EnforcementDate)
		putText(doc, query.FieldEnforcementType, v.EnforcementActionType)
		putText(doc, "SEVERITY_IND_CODE", v.Severity)
		out[query.CollectionViolations] = append(out[query.CollectionViolations], doc)
	}

	for _, g := range d.Geography {
		doc := bson.M{}
		putText(doc, query.FieldPWSID, g.PWSID)
		putText(doc, query.FieldCounty, g.County)
		putText(doc, "CITY_SERVED", g.City)
		putText(doc, "AREA_TYPE_CODE", g.AreaType)
		out[query.CollectionGeography] = append(out[query.CollectionGeography], doc)
	}

	for _, r := range d.References {
		doc := bson.M{}
		putText(doc, query.FieldValueType, r.ValueType)
		putText(doc, query.FieldValueCode, models.Text(r.Code))
		putText(doc, query.FieldValueDescription, r.Description)
		out[query.CollectionReference] = append(out[query.CollectionReference], doc)
	}

	return out
}

func putText(doc bson.M, key string, v models.Text) {
	if v != "" {
		doc[key] = string(v)
	}
}

func putDate(doc bson.M, key string, d models.Date) {
	switch {
	case d.IsNull():
		doc[key] = nil
	case d.Valid && d.Raw == "":
		doc[key] = d.Time
	default:
		doc[key] = d.Raw
	}
}
