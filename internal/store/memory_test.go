// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/speedofwater/internal/models"
	"github.com/tomtom215/speedofwater/internal/query"
)

var sampleNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func sampleStore() *MemoryStore {
	return NewMemoryStore(SampleDataset(sampleNow))
}

func TestMemoryStoreCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := sampleStore()

	tests := []struct {
		filter   models.ViolationFilter
		rows     int64
		distinct int64
	}{
		{models.FilterAll, 14, 7},
		{models.FilterActive, 7, 4},
		{models.FilterHealthBasedActive, 5, 3},
		{models.FilterResolved, 5, 5},
		{models.FilterEnforcementOnly, 1, 1},
		{models.FilterOpenEnded, 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			t.Parallel()

			n, err := s.CountViolations(ctx, tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			if n != tt.rows {
				t.Errorf("CountViolations = %d, want %d", n, tt.rows)
			}

			d, err := s.CountDistinctSystems(ctx, tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			if d != tt.distinct {
				t.Errorf("CountDistinctSystems = %d, want %d", d, tt.distinct)
			}
		})
	}
}

func TestMemoryStoreCountDistinctSystems_SkipsUnknownPWSIDs(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(Dataset{
		Systems: []models.WaterSystem{{PWSID: "GA1"}},
		Violations: []models.ViolationRecord{
			{PWSID: "GA1", ViolationID: "1", Status: "Unaddressed"},
			{PWSID: "XX9", ViolationID: "2", Status: "Unaddressed"},
			{PWSID: "XX9", ViolationID: "3", Status: "Addressed"},
		},
	})

	got, err := s.CountDistinctSystems(context.Background(), models.FilterActive)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("CountDistinctSystems = %d, want 1", got)
	}

	cov, err := s.Coverage(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if cov.SystemsWithViolations != 2 {
		t.Errorf("SystemsWithViolations = %d, want 2", cov.SystemsWithViolations)
	}
}

func TestMemoryStoreSearchSystems(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := sampleStore()

	got, err := s.SearchSystems(ctx, "CITY", 20)
	if err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, sys := range got {
		ids = append(ids, string(sys.PWSID))
	}
	if diff := cmp.Diff([]string{"CA1910067", "CA1910033", "CA3710020"}, ids); diff != "" {
		t.Errorf("search mismatch (-want +got):\n%s", diff)
	}

	got, err = s.SearchSystems(ctx, "ca19", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("limit not applied: got %d results", len(got))
	}

	// Metacharacters are literal.
	got, err = s.SearchSystems(ctx, "Power.*", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no match for literal 'Power.*', got %d", len(got))
	}
}

func TestMemoryStoreFindSystem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := sampleStore()

	sys, err := s.FindSystem(ctx, "CA1510005")
	if err != nil {
		t.Fatal(err)
	}
	if sys.DisplayName() != "Arvin Community Services District" {
		t.Errorf("name = %q", sys.DisplayName())
	}

	if _, err := s.FindSystem(ctx, "CA0000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreFindViolations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := sampleStore()

	rows, err := s.FindViolations(ctx, "CA1510005")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}

	// Newest non-compliance period first, undated last.
	if rows[0].ViolationID != "1510005-0002" {
		t.Errorf("first row = %s, want 1510005-0002", rows[0].ViolationID)
	}
	if !rows[len(rows)-1].NonComplianceBegin.IsNull() {
		t.Errorf("undated row should sort last")
	}

	for _, r := range rows {
		if r.ViolationID == "1510005-0001" {
			if r.ViolationName != "Maximum Contaminant Level Violation, Average" {
				t.Errorf("ViolationName = %q", r.ViolationName)
			}
			if r.ContaminantName != "Arsenic" {
				t.Errorf("ContaminantName = %q", r.ContaminantName)
			}
		}
		if r.ViolationID == "" && r.ViolationName != "" {
			t.Errorf("row without a code should have no description, got %q", r.ViolationName)
		}
	}
}

func TestMemoryStoreFindViolationsForSystems(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := sampleStore()

	rows, err := s.FindViolationsForSystems(ctx, []string{"CA1910033", "CA5400567"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Errorf("got %d rows, want 4", len(rows))
	}

	rows, err = s.FindViolationsForSystems(ctx, nil)
	if err != nil || rows != nil {
		t.Errorf("empty id list should return nil, nil; got %v, %v", rows, err)
	}
}

func TestMemoryStoreCountySystems(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := sampleStore()

	got, err := s.CountySystems(ctx, "los ANGELES")
	if err != nil {
		t.Fatal(err)
	}
	want := []models.SystemRef{
		{PWSID: "CA1910033", Name: "Glendale-City, Water Dept.", Population: 196000},
		{PWSID: "CA1910067", Name: "Los Angeles-City, Dept. of Water & Power", Population: 3900000},
		{PWSID: "CA1999999", Name: models.UnknownSystemName, Population: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("county systems mismatch (-want +got):\n%s", diff)
	}

	// Anchored: a prefix does not match.
	got, err = s.CountySystems(ctx, "Los")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("partial county name matched %d systems", len(got))
	}
}

func TestMemoryStoreSystemTotals(t *testing.T) {
	t.Parallel()

	got, err := sampleStore().SystemTotals(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := models.SystemTotals{Systems: 8, Population: 6939340}
	if got != want {
		t.Errorf("SystemTotals = %+v, want %+v", got, want)
	}
}

func TestMemoryStoreGroupByCategory(t *testing.T) {
	t.Parallel()

	got, err := sampleStore().GroupByCategory(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []models.CategoryCount{
		{Code: "2", Category: "Maximum Contaminant Level Violation, Average", Count: 4},
		{Code: "3", Category: "Monitoring, Regular", Count: 4},
		{Code: "", Category: models.UnknownViolationType, Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStoreGroupByMonth(t *testing.T) {
	t.Parallel()

	since := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	got, err := sampleStore().GroupByMonth(context.Background(), since, until)
	if err != nil {
		t.Fatal(err)
	}
	want := []models.MonthCount{
		{Year: 2025, Month: 4, ViolationCount: 1, DistinctSystemCount: 1},
		{Year: 2025, Month: 6, ViolationCount: 2, DistinctSystemCount: 1},
		{Year: 2025, Month: 8, ViolationCount: 1, DistinctSystemCount: 1},
		{Year: 2025, Month: 10, ViolationCount: 1, DistinctSystemCount: 1},
		{Year: 2025, Month: 11, ViolationCount: 1, DistinctSystemCount: 1},
		{Year: 2025, Month: 12, ViolationCount: 1, DistinctSystemCount: 1},
		{Year: 2026, Month: 1, ViolationCount: 1, DistinctSystemCount: 1},
		{Year: 2026, Month: 2, ViolationCount: 1, DistinctSystemCount: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("months mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStoreTopViolators(t *testing.T) {
	t.Parallel()

	got, err := sampleStore().TopViolators(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []models.TopViolator{
		{PWSID: "CA1510005", Name: "Arvin Community Services District", ViolationCount: 5, Population: 21000},
		{PWSID: "CA5400567", Name: "Tooleville Mutual Nonprofit Water", ViolationCount: 3, Population: 340},
		{PWSID: "CA1910067", Name: "Los Angeles-City, Dept. of Water & Power", ViolationCount: 2, Population: 3900000},
		{PWSID: "CA1910033", Name: "Glendale-City, Water Dept.", ViolationCount: 1, Population: 196000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("top violators mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStoreQualityQueries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := sampleStore()

	statuses, err := s.StatusDistribution(ctx)
	if err != nil {
		t.Fatal(err)
	}
	wantStatuses := []models.StatusCount{
		{Status: "Resolved", Count: 5},
		{Status: "Addressed", Count: 4},
		{Status: "Unaddressed", Count: 3},
		{Status: "", Count: 1},
		{Status: "Archived", Count: 1},
	}
	if diff := cmp.Diff(wantStatuses, statuses); diff != "" {
		t.Errorf("status distribution mismatch (-want +got):\n%s", diff)
	}

	counties, err := s.TopCounties(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	wantCounties := []models.CountyCount{{County: "Los Angeles", Systems: 3}, {County: "Tulare", Systems: 2}}
	if diff := cmp.Diff(wantCounties, counties); diff != "" {
		t.Errorf("top counties mismatch (-want +got):\n%s", diff)
	}

	coverage, err := s.Coverage(ctx)
	if err != nil {
		t.Fatal(err)
	}
	wantCoverage := models.CoverageCounts{
		GeographicRecords:       8,
		SystemsWithViolations:   7,
		SystemsWithoutGeography: 1,
		GeographyWithoutSystems: 1,
	}
	if coverage != wantCoverage {
		t.Errorf("Coverage = %+v, want %+v", coverage, wantCoverage)
	}
}

func TestMemoryStoreFailWith(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := sampleStore()
	s.FailWith(ErrUnavailable)

	if err := s.Ping(ctx); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Ping = %v, want ErrUnavailable", err)
	}
	if _, err := s.TopViolators(ctx, 3); !errors.Is(err, ErrUnavailable) {
		t.Errorf("TopViolators = %v, want ErrUnavailable", err)
	}

	s.FailWith(nil)
	if err := s.Ping(ctx); err != nil {
		t.Errorf("Ping after recovery = %v", err)
	}
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := sampleStore().SystemTotals(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestMemoryStoreLoader(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore(Dataset{})

	err := s.InsertBatch(ctx, query.CollectionViolations, []bson.M{
		{
			"PWSID":                    "TX0000001",
			"VIOLATION_ID":             int32(77),
			"VIOLATION_CODE":           int32(2),
			"VIOLATION_STATUS":         "Unaddressed",
			"NON_COMPL_PER_BEGIN_DATE": "2025-06-01",
			"NON_COMPL_PER_END_DATE":   nil,
			"IS_HEALTH_BASED_IND":      "Y",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	err = s.InsertBatch(ctx, query.CollectionSystems, []bson.M{
		{"PWSID": "TX0000001", "PWS_NAME": "Test Water", "POPULATION_SERVED_COUNT": "1200"},
	})
	if err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot()
	if len(snap.Violations) != 1 || len(snap.Systems) != 1 {
		t.Fatalf("snapshot = %d violations, %d systems", len(snap.Violations), len(snap.Systems))
	}
	v := snap.Violations[0]
	if v.ViolationID != "77" || v.ViolationCode != "2" {
		t.Errorf("coerced id/code = %q/%q", v.ViolationID, v.ViolationCode)
	}
	if !v.NonComplianceBegin.Valid || !v.NonComplianceEnd.IsNull() {
		t.Errorf("dates not coerced: begin=%+v end=%+v", v.NonComplianceBegin, v.NonComplianceEnd)
	}
	if snap.Systems[0].Population.Or(0) != 1200 {
		t.Errorf("population = %d", snap.Systems[0].Population.Or(0))
	}

	if err := s.ResetCollection(ctx, query.CollectionViolations); err != nil {
		t.Fatal(err)
	}
	if n, _ := s.CountViolations(ctx, models.FilterAll); n != 0 {
		t.Errorf("reset left %d rows", n)
	}

	if err := s.InsertBatch(ctx, "nope", []bson.M{{"a": 1}}); err == nil {
		t.Error("expected error for unknown collection")
	}
}
