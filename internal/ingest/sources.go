// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package ingest

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/speedofwater/internal/models"
	"github.com/tomtom215/speedofwater/internal/query"
)

// Source maps one CSV export to a collection.
type Source struct {
	File       string
	Collection string
}

// DefaultSources lists the SDWA exports in load order.
func DefaultSources() []Source {
	return []Source{
		{File: "SDWA_PUB_WATER_SYSTEMS.csv", Collection: query.CollectionSystems},
		{File: "SDWA_VIOLATIONS_ENFORCEMENT.csv", Collection: query.CollectionViolations},
		{File: "SDWA_GEOGRAPHIC_AREAS.csv", Collection: query.CollectionGeography},
		{File: "SDWA_REF_CODE_VALUES.csv", Collection: query.CollectionReference},
	}
}

// Row is one CSV record keyed by upper-cased column name. NULL cells are
// absent.
type Row map[string]string

// dateColumns are written as dates, or null when empty.
var dateColumns = map[string]bool{
	query.FieldComplianceBegin:    true,
	query.FieldComplianceEnd:      true,
	query.FieldNonComplianceBegin: true,
	query.FieldNonComplianceEnd:   true,
	query.FieldEnforcementDate:    true,
}

// exportDateLayouts are the US forms the ECHO exports use, tried after the
// ISO forms models.ParseDate accepts.
var exportDateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
}

// Document converts a row to the stored document for collection.
func Document(collection string, row Row) bson.M {
	doc := make(bson.M, len(row))
	for col, raw := range row {
		value := strings.TrimSpace(raw)

		if collection == query.CollectionViolations && dateColumns[col] {
			doc[col] = dateValue(value)
			continue
		}
		if value == "" {
			continue
		}
		if col == query.FieldPopulation {
			doc[col] = countValue(value)
			continue
		}
		doc[col] = value
	}

	if collection == query.CollectionViolations {
		// Columns missing from the export still read as null dates.
		for col := range dateColumns {
			if _, ok := doc[col]; !ok {
				doc[col] = nil
			}
		}
	}
	return doc
}

// dateValue returns a time.Time for parseable dates, the text for
// malformed ones, and nil for empty cells.
func dateValue(s string) any {
	if s == "" {
		return nil
	}
	if d := models.ParseDate(s); d.Valid {
		return d.Time
	}
	for _, layout := range exportDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return s
}

// countValue returns an int64 for integer text, allowing thousands
// separators, and the text otherwise.
func countValue(s string) any {
	if n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64); err == nil {
		return n
	}
	return s
}
