// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tomtom215/speedofwater/internal/compliance"
	"github.com/tomtom215/speedofwater/internal/models"
	"github.com/tomtom215/speedofwater/internal/query"
)

// Dataset is the full content of the four SDWIS collections.
type Dataset struct {
	Systems    []models.WaterSystem
	Violations []models.ViolationRecord
	Geography  []models.GeographicArea
	References []models.ReferenceCode
}

// MemoryStore is an in-process RecordStore. Documents keep insertion order,
// which stands in for MongoDB natural order.
type MemoryStore struct {
	mu      sync.RWMutex
	data    Dataset
	failErr error
}

// NewMemoryStore returns a store holding a copy of data.
func NewMemoryStore(data Dataset) *MemoryStore {
	m := &MemoryStore{}
	m.Replace(data)
	return m
}

// Replace swaps the whole dataset.
func (m *MemoryStore) Replace(data Dataset) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = Dataset{
		Systems:    append([]models.WaterSystem(nil), data.Systems...),
		Violations: append([]models.ViolationRecord(nil), data.Violations...),
		Geography:  append([]models.GeographicArea(nil), data.Geography...),
		References: append([]models.ReferenceCode(nil), data.References...),
	}
}

// FailWith makes every subsequent call return err. Pass nil to recover.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

// read takes the read lock after checking the context and injected failure.
// The caller must call m.mu.RUnlock when err is nil.
func (m *MemoryStore) read(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	if m.failErr != nil {
		err := m.failErr
		m.mu.RUnlock()
		return err
	}
	return nil
}

// describe returns the reference description for a normalized code.
// Empty codes never match.
func (m *MemoryStore) describe(refType string, code models.Code) models.Text {
	if code == "" {
		return ""
	}
	for _, ref := range m.data.References {
		if string(ref.ValueType) == refType && ref.Code == code {
			return ref.Description
		}
	}
	return ""
}

func (m *MemoryStore) systemRowFor(pwsid string) systemRow {
	row := systemRow{PWSID: models.Text(pwsid)}
	for _, sys := range m.data.Systems {
		if string(sys.PWSID) == pwsid {
			row.Name = sys.Name
			row.Population = sys.Population
			break
		}
	}
	return row
}

// Ping implements RecordStore.
func (m *MemoryStore) Ping(ctx context.Context) error {
	if err := m.read(ctx); err != nil {
		return err
	}
	m.mu.RUnlock()
	return nil
}

// Close implements RecordStore.
func (m *MemoryStore) Close(context.Context) error { return nil }

// SearchSystems implements RecordStore.
func (m *MemoryStore) SearchSystems(ctx context.Context, q string, limit int) ([]models.WaterSystem, error) {
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	defer m.mu.RUnlock()

	needle := strings.ToLower(q)
	var out []models.WaterSystem
	for _, sys := range m.data.Systems {
		if limit > 0 && len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(string(sys.Name)), needle) ||
			strings.Contains(strings.ToLower(string(sys.PWSID)), needle) {
			out = append(out, sys)
		}
	}
	return out, nil
}

// FindSystem implements RecordStore.
func (m *MemoryStore) FindSystem(ctx context.Context, pwsid string) (models.WaterSystem, error) {
	if err := m.read(ctx); err != nil {
		return models.WaterSystem{}, err
	}
	defer m.mu.RUnlock()

	for _, sys := range m.data.Systems {
		if string(sys.PWSID) == pwsid {
			return sys, nil
		}
	}
	return models.WaterSystem{}, fmt.Errorf("find_system %s: %w", pwsid, ErrNotFound)
}

// FindViolations implements RecordStore.
func (m *MemoryStore) FindViolations(ctx context.Context, pwsid string) ([]models.ViolationRecord, error) {
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	defer m.mu.RUnlock()

	var out []models.ViolationRecord
	for _, r := range m.data.Violations {
		if string(r.PWSID) != pwsid {
			continue
		}
		r.ViolationName = m.describe(models.RefTypeViolation, r.ViolationCode)
		r.ContaminantName = m.describe(models.RefTypeContaminant, r.ContaminantCode)
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sortsAfter(out[i].NonComplianceBegin, out[j].NonComplianceBegin)
	})
	return out, nil
}

// sortsAfter orders dates the way a descending MongoDB sort does: BSON
// dates, then strings, then null.
func sortsAfter(a, b models.Date) bool {
	ra, rb := dateRank(a), dateRank(b)
	if ra != rb {
		return ra > rb
	}
	switch ra {
	case 2:
		return a.Time.After(b.Time)
	case 1:
		return a.Raw > b.Raw
	default:
		return false
	}
}

func dateRank(d models.Date) int {
	switch {
	case d.IsNull():
		return 0
	case d.Valid && d.Raw == "":
		return 2
	default:
		return 1
	}
}

// FindViolationsForSystems implements RecordStore.
func (m *MemoryStore) FindViolationsForSystems(ctx context.Context, pwsids []string) ([]models.ViolationRecord, error) {
	if len(pwsids) == 0 {
		return nil, nil
	}
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	defer m.mu.RUnlock()

	wanted := make(map[string]struct{}, len(pwsids))
	for _, id := range pwsids {
		wanted[id] = struct{}{}
	}
	var out []models.ViolationRecord
	for _, r := range m.data.Violations {
		if _, ok := wanted[string(r.PWSID)]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// CountySystems implements RecordStore.
func (m *MemoryStore) CountySystems(ctx context.Context, county string) ([]models.SystemRef, error) {
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	defer m.mu.RUnlock()

	seen := make(map[string]struct{})
	var ids []string
	for _, g := range m.data.Geography {
		id := string(g.PWSID)
		if id == "" || !strings.EqualFold(string(g.County), county) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.SystemRef, len(ids))
	for i, id := range ids {
		out[i] = m.systemRowFor(id).ref()
	}
	return out, nil
}

func (m *MemoryStore) matching(filter models.ViolationFilter) []models.ViolationRecord {
	var out []models.ViolationRecord
	for _, r := range m.data.Violations {
		if compliance.Matches(filter, r) {
			out = append(out, r)
		}
	}
	return out
}

// CountViolations implements RecordStore.
func (m *MemoryStore) CountViolations(ctx context.Context, filter models.ViolationFilter) (int64, error) {
	if err := m.read(ctx); err != nil {
		return 0, err
	}
	defer m.mu.RUnlock()

	return int64(len(m.matching(filter))), nil
}

// CountDistinctSystems implements RecordStore.
func (m *MemoryStore) CountDistinctSystems(ctx context.Context, filter models.ViolationFilter) (int64, error) {
	if err := m.read(ctx); err != nil {
		return 0, err
	}
	defer m.mu.RUnlock()

	known := make(map[string]struct{}, len(m.data.Systems))
	for _, sys := range m.data.Systems {
		known[string(sys.PWSID)] = struct{}{}
	}
	var n int64
	for _, kc := range compliance.CountBy(m.matching(filter), pwsidOf) {
		if _, ok := known[kc.Key]; ok {
			n++
		}
	}
	return n, nil
}

func pwsidOf(r models.ViolationRecord) string { return string(r.PWSID) }

// SystemTotals implements RecordStore.
func (m *MemoryStore) SystemTotals(ctx context.Context) (models.SystemTotals, error) {
	if err := m.read(ctx); err != nil {
		return models.SystemTotals{}, err
	}
	defer m.mu.RUnlock()

	out := models.SystemTotals{Systems: int64(len(m.data.Systems))}
	for _, sys := range m.data.Systems {
		out.Population += sys.Population.Or(0)
	}
	return out, nil
}

// GroupByCategory implements RecordStore. Ties keep first-seen order.
func (m *MemoryStore) GroupByCategory(ctx context.Context, limit int) ([]models.CategoryCount, error) {
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	defer m.mu.RUnlock()

	counts := compliance.CountBy(m.data.Violations, func(r models.ViolationRecord) string {
		return string(r.ViolationCode)
	})
	top := compliance.TopN(counts, limit)

	out := make([]models.CategoryCount, len(top))
	for i, kc := range top {
		category := string(m.describe(models.RefTypeViolation, models.Code(kc.Key)))
		if category == "" {
			category = models.UnknownViolationType
		}
		out[i] = models.CategoryCount{Code: kc.Key, Category: category, Count: kc.Count}
	}
	return out, nil
}

// GroupByMonth implements RecordStore.
func (m *MemoryStore) GroupByMonth(ctx context.Context, since, until time.Time) ([]models.MonthCount, error) {
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	defer m.mu.RUnlock()

	type bucket struct {
		count   int64
		systems map[string]struct{}
	}
	buckets := make(map[[2]int]*bucket)
	for _, r := range m.data.Violations {
		d := r.NonComplianceBegin
		if !d.Valid || d.Time.Before(since) || !d.Time.Before(until) {
			continue
		}
		t := d.Time.UTC()
		key := [2]int{t.Year(), int(t.Month())}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{systems: make(map[string]struct{})}
			buckets[key] = b
		}
		b.count++
		b.systems[string(r.PWSID)] = struct{}{}
	}

	out := make([]models.MonthCount, 0, len(buckets))
	for key, b := range buckets {
		out = append(out, models.MonthCount{
			Year:                key[0],
			Month:               key[1],
			ViolationCount:      b.count,
			DistinctSystemCount: int64(len(b.systems)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

// TopViolators implements RecordStore. Ties are ordered by PWSID.
func (m *MemoryStore) TopViolators(ctx context.Context, limit int) ([]models.TopViolator, error) {
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	defer m.mu.RUnlock()

	var withID []models.ViolationRecord
	for _, r := range m.data.Violations {
		if r.PWSID != "" {
			withID = append(withID, r)
		}
	}
	counts := compliance.CountBy(withID, pwsidOf)
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}

	out := make([]models.TopViolator, len(counts))
	for i, kc := range counts {
		row := m.systemRowFor(kc.Key)
		row.ViolationCount = kc.Count
		out[i] = row.violator()
	}
	return out, nil
}

// StatusDistribution implements RecordStore.
func (m *MemoryStore) StatusDistribution(ctx context.Context) ([]models.StatusCount, error) {
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	defer m.mu.RUnlock()

	counts := compliance.CountBy(m.data.Violations, func(r models.ViolationRecord) string {
		return string(r.Status)
	})
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})

	out := make([]models.StatusCount, len(counts))
	for i, kc := range counts {
		out[i] = models.StatusCount{Status: kc.Key, Count: kc.Count}
	}
	return out, nil
}

// TopCounties implements RecordStore.
func (m *MemoryStore) TopCounties(ctx context.Context, limit int) ([]models.CountyCount, error) {
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	defer m.mu.RUnlock()

	systems := make(map[string]map[string]struct{})
	for _, g := range m.data.Geography {
		county := string(g.County)
		if county == "" {
			continue
		}
		if systems[county] == nil {
			systems[county] = make(map[string]struct{})
		}
		if g.PWSID != "" {
			systems[county][string(g.PWSID)] = struct{}{}
		}
	}

	out := make([]models.CountyCount, 0, len(systems))
	for county, ids := range systems {
		out = append(out, models.CountyCount{County: county, Systems: int64(len(ids))})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Systems != out[j].Systems {
			return out[i].Systems > out[j].Systems
		}
		return out[i].County < out[j].County
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Coverage implements RecordStore.
func (m *MemoryStore) Coverage(ctx context.Context) (models.CoverageCounts, error) {
	if err := m.read(ctx); err != nil {
		return models.CoverageCounts{}, err
	}
	defer m.mu.RUnlock()

	systemIDs := make(map[string]struct{}, len(m.data.Systems))
	for _, sys := range m.data.Systems {
		systemIDs[string(sys.PWSID)] = struct{}{}
	}
	geoIDs := make(map[string]struct{}, len(m.data.Geography))
	for _, g := range m.data.Geography {
		geoIDs[string(g.PWSID)] = struct{}{}
	}

	out := models.CoverageCounts{
		GeographicRecords:     int64(len(m.data.Geography)),
		SystemsWithViolations: int64(len(compliance.CountBy(m.data.Violations, pwsidOf))),
	}
	for _, sys := range m.data.Systems {
		if _, ok := geoIDs[string(sys.PWSID)]; !ok {
			out.SystemsWithoutGeography++
		}
	}
	for _, g := range m.data.Geography {
		if _, ok := systemIDs[string(g.PWSID)]; !ok {
			out.GeographyWithoutSystems++
		}
	}
	return out, nil
}

// ResetCollection implements Loader.
func (m *MemoryStore) ResetCollection(_ context.Context, collection string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch collection {
	case query.CollectionSystems:
		m.data.Systems = nil
	case query.CollectionViolations:
		m.data.Violations = nil
	case query.CollectionGeography:
		m.data.Geography = nil
	case query.CollectionReference:
		m.data.References = nil
	default:
		return fmt.Errorf("reset: unknown collection %q", collection)
	}
	return nil
}

// InsertBatch implements Loader. Documents are round-tripped through BSON
// so they are coerced exactly as documents read from MongoDB would be.
func (m *MemoryStore) InsertBatch(ctx context.Context, collection string, docs []bson.M) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failErr != nil {
		return m.failErr
	}

	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return fmt.Errorf("insert %s: %w", collection, err)
		}
		if err := m.appendRaw(collection, raw); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryStore) appendRaw(collection string, raw []byte) error {
	switch collection {
	case query.CollectionSystems:
		var v models.WaterSystem
		if err := bson.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("insert %s: %w", collection, err)
		}
		m.data.Systems = append(m.data.Systems, v)
	case query.CollectionViolations:
		var v models.ViolationRecord
		if err := bson.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("insert %s: %w", collection, err)
		}
		m.data.Violations = append(m.data.Violations, v)
	case query.CollectionGeography:
		var v models.GeographicArea
		if err := bson.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("insert %s: %w", collection, err)
		}
		m.data.Geography = append(m.data.Geography, v)
	case query.CollectionReference:
		var v models.ReferenceCode
		if err := bson.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("insert %s: %w", collection, err)
		}
		m.data.References = append(m.data.References, v)
	default:
		return fmt.Errorf("insert: unknown collection %q", collection)
	}
	return nil
}

// EnsureIndexes implements Loader. It is a no-op in memory.
func (m *MemoryStore) EnsureIndexes(context.Context) error { return nil }

// Snapshot returns a copy of the current dataset.
func (m *MemoryStore) Snapshot() Dataset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Dataset{
		Systems:    append([]models.WaterSystem(nil), m.data.Systems...),
		Violations: append([]models.ViolationRecord(nil), m.data.Violations...),
		Geography:  append([]models.GeographicArea(nil), m.data.Geography...),
		References: append([]models.ReferenceCode(nil), m.data.References...),
	}
}

var (
	_ RecordStore = (*MemoryStore)(nil)
	_ Loader      = (*MemoryStore)(nil)
)
