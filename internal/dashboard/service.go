// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/speedofwater/internal/compliance"
	"github.com/tomtom215/speedofwater/internal/config"
	"github.com/tomtom215/speedofwater/internal/models"
	"github.com/tomtom215/speedofwater/internal/store"
)

// Options bounds and tunes the service.
type Options struct {
	SearchLimit       int
	DefaultTopLimit   int
	MaxTopLimit       int
	DefaultMonthsBack int
	MaxMonthsBack     int
	CacheTTL          time.Duration // 0 disables caching

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// OptionsFromConfig maps the api configuration section.
func OptionsFromConfig(cfg config.APIConfig) Options {
	return Options{
		SearchLimit:       cfg.SearchLimit,
		DefaultTopLimit:   cfg.DefaultTopLimit,
		MaxTopLimit:       cfg.MaxTopLimit,
		DefaultMonthsBack: cfg.DefaultMonthsBack,
		MaxMonthsBack:     cfg.MaxMonthsBack,
		CacheTTL:          cfg.CacheTTL,
	}
}

type summaryKey struct {
	limit  int
	months int
}

// Service answers dashboard queries against a RecordStore.
type Service struct {
	store store.RecordStore
	opts  Options

	summaries *ttlcache.Cache[summaryKey, *models.RegulatorySummary]
	reports   *ttlcache.Cache[string, *models.DataQualityReport]
}

// NewService creates a service over rs.
func NewService(rs store.RecordStore, opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	s := &Service{store: rs, opts: opts}
	if opts.CacheTTL > 0 {
		s.summaries = ttlcache.New(
			ttlcache.WithTTL[summaryKey, *models.RegulatorySummary](opts.CacheTTL),
		)
		s.reports = ttlcache.New(
			ttlcache.WithTTL[string, *models.DataQualityReport](opts.CacheTTL),
		)
	}
	return s
}

// Serve evicts expired cache entries until ctx is done.
func (s *Service) Serve(ctx context.Context) error {
	if s.summaries == nil {
		<-ctx.Done()
		return ctx.Err()
	}

	go s.summaries.Start()
	go s.reports.Start()
	<-ctx.Done()
	s.summaries.Stop()
	s.reports.Stop()
	return ctx.Err()
}

// String names the service in supervisor logs.
func (s *Service) String() string { return "dashboard-cache" }

// ClearCache drops every cached summary and report.
func (s *Service) ClearCache() {
	if s.summaries == nil {
		return
	}
	s.summaries.DeleteAll()
	s.reports.DeleteAll()
}

// Ping checks that the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// SearchSystems returns systems whose name or PWSID contains q. A blank
// query matches nothing.
func (s *Service) SearchSystems(ctx context.Context, q string) ([]models.WaterSystem, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []models.WaterSystem{}, nil
	}

	systems, err := s.store.SearchSystems(ctx, q, s.opts.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search systems: %w", err)
	}
	if systems == nil {
		systems = []models.WaterSystem{}
	}
	return systems, nil
}

// ViolationsForSystem returns the deduplicated, classified violation
// history of one system. Unknown systems have an empty history.
func (s *Service) ViolationsForSystem(ctx context.Context, pwsid string) ([]models.ClassifiedViolation, error) {
	rows, err := s.store.FindViolations(ctx, pwsid)
	if err != nil {
		return nil, fmt.Errorf("violations for %s: %w", pwsid, err)
	}
	return compliance.Deduplicate(rows), nil
}

// SystemDetail returns a system with its rollup, its violation history
// split by state, and its enforcement actions. It returns an error wrapping
// store.ErrNotFound for unknown systems.
func (s *Service) SystemDetail(ctx context.Context, pwsid string) (*models.SystemDetail, error) {
	var (
		system models.WaterSystem
		rows   []models.ViolationRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		system, err = s.store.FindSystem(gctx, pwsid)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.store.FindViolations(gctx, pwsid)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("system detail %s: %w", pwsid, err)
	}

	detail := &models.SystemDetail{
		WaterSystem:        system,
		Rollup:             compliance.Rollup(rows),
		ActiveViolations:   []models.ClassifiedViolation{},
		ResolvedViolations: []models.ClassifiedViolation{},
		OtherViolations:    []models.ClassifiedViolation{},
		EnforcementActions: compliance.EnforcementActions(rows),
	}
	for _, v := range compliance.Deduplicate(rows) {
		switch {
		case compliance.IsEnforcementOnly(v.ViolationRecord):
			// listed under EnforcementActions
		case v.State == models.StateActive:
			detail.ActiveViolations = append(detail.ActiveViolations, v)
		case v.State == models.StateResolved:
			detail.ResolvedViolations = append(detail.ResolvedViolations, v)
		default:
			detail.OtherViolations = append(detail.OtherViolations, v)
		}
	}
	return detail, nil
}

// SystemsInCounty lists the systems serving a county with their rollups,
// most active violations first, then by name and PWSID.
func (s *Service) SystemsInCounty(ctx context.Context, county string) ([]models.SystemWithRollup, error) {
	refs, err := s.store.CountySystems(ctx, county)
	if err != nil {
		return nil, fmt.Errorf("county systems %q: %w", county, err)
	}
	out := make([]models.SystemWithRollup, 0, len(refs))
	if len(refs) == 0 {
		return out, nil
	}

	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.PWSID
	}
	rows, err := s.store.FindViolationsForSystems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("county violations %q: %w", county, err)
	}
	rollups := compliance.RollupBySystem(rows)

	for _, ref := range refs {
		out = append(out, models.SystemWithRollup{
			PWSID:        ref.PWSID,
			Name:         ref.Name,
			Population:   ref.Population,
			SystemRollup: rollups[strings.TrimSpace(ref.PWSID)],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ActiveViolationCount != b.ActiveViolationCount {
			return a.ActiveViolationCount > b.ActiveViolationCount
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.PWSID < b.PWSID
	})
	return out, nil
}

// SummarizeByCategory returns the limit most common violation codes with
// their share of all rows.
func (s *Service) SummarizeByCategory(ctx context.Context, limit int) ([]models.CategoryCount, error) {
	limit = s.topLimit(limit)

	var (
		categories []models.CategoryCount
		total      int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.store.GroupByCategory(gctx, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.CountViolations(gctx, models.FilterAll)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("summarize by category: %w", err)
	}
	return withPercentages(categories, total), nil
}

// SummarizeByMonth returns monthly counts for the trailing window of
// monthsBack calendar months ending with the current month.
func (s *Service) SummarizeByMonth(ctx context.Context, monthsBack int) ([]models.MonthCount, error) {
	since, until := s.window(s.monthsBack(monthsBack))
	months, err := s.store.GroupByMonth(ctx, since, until)
	if err != nil {
		return nil, fmt.Errorf("summarize by month: %w", err)
	}
	return withYearMonth(months), nil
}

// TopViolators ranks systems by number of violation rows.
func (s *Service) TopViolators(ctx context.Context, limit int) ([]models.TopViolator, error) {
	top, err := s.store.TopViolators(ctx, s.topLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("top violators: %w", err)
	}
	if top == nil {
		top = []models.TopViolator{}
	}
	return top, nil
}

// topLimit applies the default to non-positive limits and caps the rest.
func (s *Service) topLimit(limit int) int {
	if limit <= 0 {
		limit = s.opts.DefaultTopLimit
	}
	if s.opts.MaxTopLimit > 0 && limit > s.opts.MaxTopLimit {
		limit = s.opts.MaxTopLimit
	}
	return limit
}

func (s *Service) monthsBack(months int) int {
	if months <= 0 {
		months = s.opts.DefaultMonthsBack
	}
	if s.opts.MaxMonthsBack > 0 && months > s.opts.MaxMonthsBack {
		months = s.opts.MaxMonthsBack
	}
	return months
}

// window returns [since, until) covering the current UTC month and the
// months-1 months before it.
func (s *Service) window(months int) (since, until time.Time) {
	now := s.opts.Clock().UTC()
	until = time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	since = until.AddDate(0, -months, 0)
	return since, until
}

func withPercentages(categories []models.CategoryCount, total int64) []models.CategoryCount {
	out := make([]models.CategoryCount, len(categories))
	for i, c := range categories {
		c.Percentage = compliance.Percentage(c.Count, total)
		out[i] = c
	}
	return out
}

func withYearMonth(months []models.MonthCount) []models.MonthCount {
	out := make([]models.MonthCount, len(months))
	for i, m := range months {
		m.YearMonth = fmt.Sprintf("%04d-%02d", m.Year, m.Month)
		out[i] = m
	}
	return out
}
