// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package compliance

import (
	"sort"

	"github.com/tomtom215/speedofwater/internal/models"
)

// violationKey identifies one logical violation across its enforcement rows.
type violationKey struct {
	id          string
	code        string
	contaminant string
	begin       string
	end         string
}

func keyOf(r models.ViolationRecord) violationKey {
	return violationKey{
		id:          r.ViolationID.String(),
		code:        r.ViolationCode.String(),
		contaminant: r.ContaminantCode.String(),
		begin:       r.ComplianceBegin.Key(),
		end:         r.ComplianceEnd.Key(),
	}
}

// Deduplicate collapses rows that describe the same violation, classifies
// each survivor, and orders the result newest first.
//
// The survivor is the most recently dated row of its group, preferring rows
// that carry a violation status over enforcement-only rows. EnforcementCount
// records how many rows were collapsed into it.
func Deduplicate(records []models.ViolationRecord) []models.ClassifiedViolation {
	order := make([]violationKey, 0, len(records))
	best := make(map[violationKey]models.ViolationRecord, len(records))
	counts := make(map[violationKey]int, len(records))

	for i := range records {
		k := keyOf(records[i])
		current, ok := best[k]
		if !ok {
			order = append(order, k)
			best[k] = records[i]
		} else if preferred(records[i], current) {
			best[k] = records[i]
		}
		counts[k]++
	}

	out := make([]models.ClassifiedViolation, 0, len(order))
	for _, k := range order {
		out = append(out, classified(best[k], counts[k]))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return newerFirst(&out[i].ViolationRecord, &out[j].ViolationRecord, historyDate)
	})
	return out
}

// EnforcementActions returns the enforcement-only rows with readable action
// names, most recent enforcement first.
func EnforcementActions(records []models.ViolationRecord) []models.EnforcementAction {
	out := make([]models.EnforcementAction, 0)
	for i := range records {
		if !IsEnforcementOnly(records[i]) {
			continue
		}
		rec := withDescriptions(records[i])
		out = append(out, models.EnforcementAction{
			ViolationRecord: rec,
			ActionName:      EnforcementActionName(rec.EnforcementActionType.String()),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return newerFirst(&out[i].ViolationRecord, &out[j].ViolationRecord, func(r *models.ViolationRecord) models.Date {
			return r.EnforcementDate
		})
	})
	return out
}

func classified(r models.ViolationRecord, collapsed int) models.ClassifiedViolation {
	r = withDescriptions(r)
	return models.ClassifiedViolation{
		ViolationRecord:  r,
		State:            Classify(r),
		IsHealthBased:    IsHealthBased(r),
		Category:         ViolationCategory(r.ViolationName.String()),
		EnforcementCount: collapsed,
	}
}

// withDescriptions applies the reference-code fallbacks.
func withDescriptions(r models.ViolationRecord) models.ViolationRecord {
	if r.ViolationName.IsEmpty() {
		r.ViolationName = models.UnknownViolationType
	}
	if r.ContaminantName.IsEmpty() {
		r.ContaminantName = models.UnknownContaminant
	}
	return r
}

// preferred reports whether candidate should replace current as the row
// displayed for their shared violation.
func preferred(candidate, current models.ViolationRecord) bool {
	candEnf, curEnf := IsEnforcementOnly(candidate), IsEnforcementOnly(current)
	if candEnf != curEnf {
		return !candEnf
	}
	return recency(candidate).After(recency(current))
}

// recency is the latest valid date attached to a row.
func recency(r models.ViolationRecord) models.Date {
	d := r.NonComplianceBegin
	if r.EnforcementDate.After(d) {
		d = r.EnforcementDate
	}
	return d
}

func historyDate(r *models.ViolationRecord) models.Date {
	if r.NonComplianceBegin.Valid {
		return r.NonComplianceBegin
	}
	return r.ComplianceBegin
}

// newerFirst orders by date descending with undated rows last and
// VIOLATION_ID ascending as the final tiebreak.
func newerFirst(a, b *models.ViolationRecord, date func(*models.ViolationRecord) models.Date) bool {
	da, db := date(a), date(b)
	if da.Valid != db.Valid {
		return da.Valid
	}
	if da.Valid && !da.Time.Equal(db.Time) {
		return da.Time.After(db.Time)
	}
	return a.ViolationID.String() < b.ViolationID.String()
}
