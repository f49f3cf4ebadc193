// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package compliance

import (
	"math"

	"github.com/tomtom215/speedofwater/internal/models"
)

// Rollup computes the per-system counters over all rows of one system.
// Enforcement-only rows count toward the total and the enforcement counter,
// never toward active violations.
func Rollup(records []models.ViolationRecord) models.SystemRollup {
	var out models.SystemRollup
	for i := range records {
		out.TotalViolationCount++
		if IsEnforcementOnly(records[i]) {
			out.EnforcementActionCount++
			continue
		}
		if IsActive(records[i]) {
			out.ActiveViolationCount++
		}
	}
	return out
}

// RollupBySystem groups rows by PWSID and rolls each group up.
func RollupBySystem(records []models.ViolationRecord) map[string]models.SystemRollup {
	grouped := make(map[string][]models.ViolationRecord)
	for i := range records {
		id := records[i].PWSID.String()
		grouped[id] = append(grouped[id], records[i])
	}

	out := make(map[string]models.SystemRollup, len(grouped))
	for id, recs := range grouped {
		out[id] = Rollup(recs)
	}
	return out
}

// NonCompliantSystems counts distinct systems with at least one active row.
func NonCompliantSystems(records []models.ViolationRecord) int64 {
	seen := make(map[string]struct{})
	for i := range records {
		if IsActive(records[i]) {
			seen[records[i].PWSID.String()] = struct{}{}
		}
	}
	return int64(len(seen))
}

// ComplianceRate is the percentage of systems without active violations.
// It is 100 when there are no systems and is clamped to [0,100] because
// violation rows may reference systems that are not in the system table.
func ComplianceRate(totalSystems, nonCompliantSystems int64) int {
	if totalSystems <= 0 {
		return 100
	}
	rate := math.Round(100 * float64(totalSystems-nonCompliantSystems) / float64(totalSystems))
	return clampPercent(rate)
}

// RiskScore is the percentage of active violations that are health-based.
// It is 0 when there are no active violations.
func RiskScore(healthBasedActive, active int64) int {
	if active <= 0 {
		return 0
	}
	return clampPercent(math.Round(100 * float64(healthBasedActive) / float64(active)))
}

// Percentage returns count/total as a percentage rounded to one decimal.
func Percentage(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(1000*float64(count)/float64(total)) / 10
}

func clampPercent(v float64) int {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}
