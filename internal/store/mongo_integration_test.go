// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

//go:build integration

package store

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/speedofwater/internal/config"
	"github.com/tomtom215/speedofwater/internal/models"
	"github.com/tomtom215/speedofwater/internal/query"
	"github.com/tomtom215/speedofwater/internal/testinfra"
)

// setupMongoStore starts MongoDB, loads the sample dataset, and returns the
// store alongside an in-memory store holding the same data.
func setupMongoStore(t *testing.T) (*MongoStore, *MemoryStore) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container := testinfra.NewMongoContainer(ctx, t)

	s, err := Connect(ctx, config.DatabaseConfig{
		Backend:                config.BackendMongo,
		URI:                    container.URI,
		Name:                   "speedofwater_test",
		MaxPoolSize:            5,
		ServerSelectionTimeout: 10 * time.Second,
		ConnectTimeout:         30 * time.Second,
		SocketTimeout:          30 * time.Second,
		MaxIdleTime:            time.Minute,
		QueryTimeout:           20 * time.Second,
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	data := SampleDataset(sampleNow)
	for collection, docs := range data.Documents() {
		if err := s.ResetCollection(ctx, collection); err != nil {
			t.Fatalf("reset %s: %v", collection, err)
		}
		if err := s.InsertBatch(ctx, collection, docs); err != nil {
			t.Fatalf("insert %s: %v", collection, err)
		}
	}
	if err := s.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}

	return s, NewMemoryStore(data)
}

func TestMongoStoreParity(t *testing.T) {
	mongoStore, memStore := setupMongoStore(t)
	ctx := context.Background()

	t.Run("counts", func(t *testing.T) {
		filters := []models.ViolationFilter{
			models.FilterAll,
			models.FilterActive,
			models.FilterHealthBasedActive,
			models.FilterResolved,
			models.FilterEnforcementOnly,
			models.FilterOpenEnded,
		}
		for _, f := range filters {
			want, _ := memStore.CountViolations(ctx, f)
			got, err := mongoStore.CountViolations(ctx, f)
			if err != nil {
				t.Fatalf("%s: %v", f, err)
			}
			if got != want {
				t.Errorf("CountViolations(%s) = %d, memory has %d", f, got, want)
			}

			wantDistinct, _ := memStore.CountDistinctSystems(ctx, f)
			gotDistinct, err := mongoStore.CountDistinctSystems(ctx, f)
			if err != nil {
				t.Fatalf("%s: %v", f, err)
			}
			if gotDistinct != wantDistinct {
				t.Errorf("CountDistinctSystems(%s) = %d, memory has %d", f, gotDistinct, wantDistinct)
			}
		}
	})

	t.Run("system totals", func(t *testing.T) {
		want, _ := memStore.SystemTotals(ctx)
		got, err := mongoStore.SystemTotals(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("SystemTotals = %+v, memory has %+v", got, want)
		}
	})

	t.Run("aggregations", func(t *testing.T) {
		wantCat, _ := memStore.GroupByCategory(ctx, 10)
		gotCat, err := mongoStore.GroupByCategory(ctx, 10)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(wantCat, gotCat); diff != "" {
			t.Errorf("GroupByCategory mismatch (-memory +mongo):\n%s", diff)
		}

		since := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		until := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
		wantMonths, _ := memStore.GroupByMonth(ctx, since, until)
		gotMonths, err := mongoStore.GroupByMonth(ctx, since, until)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(wantMonths, gotMonths); diff != "" {
			t.Errorf("GroupByMonth mismatch (-memory +mongo):\n%s", diff)
		}

		wantTop, _ := memStore.TopViolators(ctx, 10)
		gotTop, err := mongoStore.TopViolators(ctx, 10)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(wantTop, gotTop); diff != "" {
			t.Errorf("TopViolators mismatch (-memory +mongo):\n%s", diff)
		}
	})

	t.Run("quality", func(t *testing.T) {
		wantStatus, _ := memStore.StatusDistribution(ctx)
		gotStatus, err := mongoStore.StatusDistribution(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(wantStatus, gotStatus); diff != "" {
			t.Errorf("StatusDistribution mismatch (-memory +mongo):\n%s", diff)
		}

		wantCounties, _ := memStore.TopCounties(ctx, 10)
		gotCounties, err := mongoStore.TopCounties(ctx, 10)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(wantCounties, gotCounties); diff != "" {
			t.Errorf("TopCounties mismatch (-memory +mongo):\n%s", diff)
		}

		wantCoverage, _ := memStore.Coverage(ctx)
		gotCoverage, err := mongoStore.Coverage(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if gotCoverage != wantCoverage {
			t.Errorf("Coverage = %+v, memory has %+v", gotCoverage, wantCoverage)
		}
	})

	t.Run("county systems", func(t *testing.T) {
		want, _ := memStore.CountySystems(ctx, "LOS angeles")
		got, err := mongoStore.CountySystems(ctx, "LOS angeles")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("CountySystems mismatch (-memory +mongo):\n%s", diff)
		}
	})

	t.Run("search", func(t *testing.T) {
		got, err := mongoStore.SearchSystems(ctx, "city", 20)
		if err != nil {
			t.Fatal(err)
		}
		ids := make([]string, len(got))
		for i, s := range got {
			ids[i] = string(s.PWSID)
		}
		sort.Strings(ids)
		if diff := cmp.Diff([]string{"CA1910033", "CA1910067", "CA3710020"}, ids); diff != "" {
			t.Errorf("SearchSystems mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("system lookups", func(t *testing.T) {
		sys, err := mongoStore.FindSystem(ctx, "CA5410001")
		if err != nil {
			t.Fatal(err)
		}
		if sys.DisplayName() != models.UnknownSystemName || sys.Population.Valid {
			t.Errorf("unnamed system decoded as %+v", sys)
		}

		if _, err := mongoStore.FindSystem(ctx, "CA0000000"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}

		rows, err := mongoStore.FindViolations(ctx, "CA1510005")
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 5 {
			t.Fatalf("got %d rows, want 5", len(rows))
		}
		if rows[0].ViolationID != "1510005-0002" {
			t.Errorf("first row = %s, want 1510005-0002", rows[0].ViolationID)
		}
		if rows[0].ViolationName != "Monitoring, Regular" {
			t.Errorf("joined ViolationName = %q", rows[0].ViolationName)
		}
		if !rows[len(rows)-1].NonComplianceBegin.IsNull() {
			t.Error("undated row should sort last")
		}

		la, err := mongoStore.FindViolations(ctx, "CA1910067")
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range la {
			if r.ViolationID == "1910067-0002" && !r.NonComplianceEnd.Malformed() {
				t.Errorf("N/A end date should decode as malformed, got %+v", r.NonComplianceEnd)
			}
		}
	})
}

func TestMongoStoreReplaceCollection(t *testing.T) {
	mongoStore, _ := setupMongoStore(t)
	ctx := context.Background()

	if err := mongoStore.ResetCollection(ctx, query.CollectionViolations); err != nil {
		t.Fatal(err)
	}
	n, err := mongoStore.CountViolations(ctx, models.FilterAll)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("reset left %d rows", n)
	}
}
