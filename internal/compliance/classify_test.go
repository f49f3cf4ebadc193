// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package compliance

import (
	"testing"

	"github.com/tomtom215/speedofwater/internal/models"
)

func record(status, endDate, health, enforcement string) models.ViolationRecord {
	return models.ViolationRecord{
		PWSID:                 "GA0000001",
		Status:                models.Text(status),
		NonComplianceEnd:      models.ParseDate(endDate),
		HealthBased:           models.Text(health),
		EnforcementActionType: models.Text(enforcement),
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  models.ViolationRecord
		want models.ViolationState
	}{
		{"unaddressed open", record("Unaddressed", "", "Y", ""), models.StateActive},
		{"addressed with end date", record("Addressed", "2023-01-01", "N", ""), models.StateActive},
		{"unaddressed malformed end", record("Unaddressed", "soon", "", ""), models.StateActive},
		{"resolved closed", record("Resolved", "2023-01-01", "", ""), models.StateResolved},
		{"archived closed", record("Archived", "2020-06-30", "Y", ""), models.StateResolved},
		{"resolved but open ended", record("Resolved", "", "", ""), models.StateActive},
		{"archived malformed end", record("Archived", "13/45/2020", "", ""), models.StateUnknown},
		{"no status open ended", record("", "", "", ""), models.StateActive},
		{"no status closed", record("", "2023-01-01", "", ""), models.StateUnknown},
		{"unrecognized status closed", record("Pending", "2023-01-01", "", ""), models.StateUnknown},
		{"enforcement only", record("", "", "", "NOV"), models.StateUnknown},
		{"enforcement with status", record("Addressed", "", "", "SIA"), models.StateActive},
		{"lowercase status is not recognized", record("resolved", "2023-01-01", "", ""), models.StateUnknown},
		{"padded status is not recognized", record("Resolved ", "2023-01-01", "", ""), models.StateUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.rec); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyScenarios(t *testing.T) {
	t.Parallel()

	t.Run("unaddressed with no end date is active", func(t *testing.T) {
		t.Parallel()
		if got := Classify(record("Unaddressed", "", "", "")); got != models.StateActive {
			t.Errorf("got %s", got)
		}
	})

	t.Run("resolved with end date is resolved", func(t *testing.T) {
		t.Parallel()
		if got := Classify(record("Resolved", "2023-01-01", "", "")); got != models.StateResolved {
			t.Errorf("got %s", got)
		}
	})

	t.Run("notice of violation row is an enforcement action", func(t *testing.T) {
		t.Parallel()
		rec := record("", "", "", "NOV")
		if !IsEnforcementOnly(rec) {
			t.Fatal("expected enforcement-only row")
		}
		if IsActive(rec) {
			t.Error("enforcement rows must not count as active violations")
		}
		r := Rollup([]models.ViolationRecord{rec})
		if r.EnforcementActionCount != 1 || r.ActiveViolationCount != 0 || r.TotalViolationCount != 1 {
			t.Errorf("Rollup() = %+v", r)
		}
	})
}

func TestClassifyIsDeterministicAndClosed(t *testing.T) {
	t.Parallel()

	statuses := []string{"", "Unaddressed", "Addressed", "Resolved", "Archived", "Other", " "}
	ends := []string{"", "2023-01-01", "garbage", "2021-12-31T00:00:00Z"}
	health := []string{"", "Y", "N", "y"}
	enforcement := []string{"", "NOV", "SIA"}

	valid := map[models.ViolationState]bool{
		models.StateActive:   true,
		models.StateResolved: true,
		models.StateUnknown:  true,
	}

	for _, s := range statuses {
		for _, e := range ends {
			for _, h := range health {
				for _, enf := range enforcement {
					rec := record(s, e, h, enf)
					first := Classify(rec)
					if !valid[first] {
						t.Fatalf("Classify(%q,%q,%q,%q) = %q", s, e, h, enf, first)
					}
					if again := Classify(rec); again != first {
						t.Fatalf("Classify not deterministic: %s then %s", first, again)
					}
				}
			}
		}
	}
}

func TestIsHealthBased(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{"Y": true, "N": false, "": false, "y": false, "Yes": false}
	for in, want := range tests {
		if got := IsHealthBased(record("", "", in, "")); got != want {
			t.Errorf("IsHealthBased(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	active := record("Unaddressed", "", "Y", "")
	activeNonHealth := record("", "", "N", "")
	resolved := record("Resolved", "2023-01-01", "Y", "")
	enforcement := record("", "", "", "AO")

	tests := []struct {
		filter models.ViolationFilter
		rec    models.ViolationRecord
		want   bool
	}{
		{models.FilterAll, enforcement, true},
		{models.FilterActive, active, true},
		{models.FilterActive, enforcement, false},
		{models.FilterHealthBasedActive, active, true},
		{models.FilterHealthBasedActive, activeNonHealth, false},
		{models.FilterHealthBasedActive, resolved, false},
		{models.FilterResolved, resolved, true},
		{models.FilterResolved, active, false},
		{models.FilterEnforcementOnly, enforcement, true},
		{models.FilterEnforcementOnly, active, false},
		{models.FilterOpenEnded, enforcement, true},
		{models.FilterOpenEnded, resolved, false},
		{models.ViolationFilter(42), active, false},
	}

	for _, tt := range tests {
		if got := Matches(tt.filter, tt.rec); got != tt.want {
			t.Errorf("Matches(%s, %+v) = %v, want %v", tt.filter, tt.rec.Status, got, tt.want)
		}
	}
}
