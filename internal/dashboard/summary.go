// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/speedofwater/internal/compliance"
	"github.com/tomtom215/speedofwater/internal/logging"
	"github.com/tomtom215/speedofwater/internal/metrics"
	"github.com/tomtom215/speedofwater/internal/models"
)

// Cache names used in metrics labels.
const (
	cacheRegulatorySummary = "regulatory_summary"
	cacheDataQuality       = "data_quality"
)

// qualityTopN is the length of the ranked lists in the data-quality report.
const qualityTopN = 10

// RegulatorySummary returns the statewide compliance summary. limit bounds
// the ranked lists and months the trend window; non-positive values take
// the configured defaults.
func (s *Service) RegulatorySummary(ctx context.Context, limit, months int) (*models.RegulatorySummary, error) {
	key := summaryKey{limit: s.topLimit(limit), months: s.monthsBack(months)}

	if s.summaries != nil {
		if item := s.summaries.Get(key); item != nil {
			metrics.RecordCacheLookup(cacheRegulatorySummary, true)
			return item.Value(), nil
		}
		metrics.RecordCacheLookup(cacheRegulatorySummary, false)
	}

	summary, err := s.computeSummary(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("regulatory summary: %w", err)
	}

	if s.summaries != nil {
		s.summaries.Set(key, summary, ttlcache.DefaultTTL)
	}
	return summary, nil
}

func (s *Service) computeSummary(ctx context.Context, key summaryKey) (*models.RegulatorySummary, error) {
	var (
		totals                          models.SystemTotals
		violations, active, healthBased int64
		nonCompliant                    int64
		categories                      []models.CategoryCount
		monthly                         []models.MonthCount
		top                             []models.TopViolator
	)
	since, until := s.window(key.months)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.store.SystemTotals(gctx)
		return err
	})
	g.Go(func() (err error) {
		violations, err = s.store.CountViolations(gctx, models.FilterAll)
		return err
	})
	g.Go(func() (err error) {
		active, err = s.store.CountViolations(gctx, models.FilterActive)
		return err
	})
	g.Go(func() (err error) {
		healthBased, err = s.store.CountViolations(gctx, models.FilterHealthBasedActive)
		return err
	})
	g.Go(func() (err error) {
		nonCompliant, err = s.store.CountDistinctSystems(gctx, models.FilterActive)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.store.GroupByCategory(gctx, key.limit)
		return err
	})
	g.Go(func() (err error) {
		monthly, err = s.store.GroupByMonth(gctx, since, until)
		return err
	})
	g.Go(func() (err error) {
		top, err = s.store.TopViolators(gctx, key.limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if top == nil {
		top = []models.TopViolator{}
	}

	summary := &models.RegulatorySummary{
		TotalSystems:        totals.Systems,
		TotalViolations:     violations,
		TotalPopulation:     totals.Population,
		ActiveViolations:    active,
		HealthBasedActive:   healthBased,
		NonCompliantSystems: nonCompliant,
		ViolationsByType:    withPercentages(categories, violations),
		ViolationsByMonth:   withYearMonth(monthly),
		TopViolators:        top,
		ComplianceRate:      compliance.ComplianceRate(totals.Systems, nonCompliant),
		RiskScore:           compliance.RiskScore(healthBased, active),
		GeneratedAt:         s.opts.Clock().UTC(),
	}

	logging.Ctx(ctx).Debug().
		Int("limit", key.limit).
		Int("months", key.months).
		Int64("active_violations", active).
		Int("compliance_rate", summary.ComplianceRate).
		Msg("Computed regulatory summary")

	return summary, nil
}

// DataQuality reports on the consistency of the loaded dataset.
func (s *Service) DataQuality(ctx context.Context) (*models.DataQualityReport, error) {
	const key = "report"

	if s.reports != nil {
		if item := s.reports.Get(key); item != nil {
			metrics.RecordCacheLookup(cacheDataQuality, true)
			return item.Value(), nil
		}
		metrics.RecordCacheLookup(cacheDataQuality, false)
	}

	report, err := s.computeQuality(ctx)
	if err != nil {
		return nil, fmt.Errorf("data quality: %w", err)
	}

	if s.reports != nil {
		s.reports.Set(key, report, ttlcache.DefaultTTL)
	}
	return report, nil
}

func (s *Service) computeQuality(ctx context.Context) (*models.DataQualityReport, error) {
	var (
		total, openEnded, active, resolved, enforcementOnly int64
		statuses                                            []models.StatusCount
		top                                                 []models.TopViolator
		counties                                            []models.CountyCount
		coverage                                            models.CoverageCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	counts := []struct {
		dst    *int64
		filter models.ViolationFilter
	}{
		{&total, models.FilterAll},
		{&openEnded, models.FilterOpenEnded},
		{&active, models.FilterActive},
		{&resolved, models.FilterResolved},
		{&enforcementOnly, models.FilterEnforcementOnly},
	}
	for _, c := range counts {
		g.Go(func() (err error) {
			*c.dst, err = s.store.CountViolations(gctx, c.filter)
			return err
		})
	}
	g.Go(func() (err error) {
		statuses, err = s.store.StatusDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		top, err = s.store.TopViolators(gctx, qualityTopN)
		return err
	})
	g.Go(func() (err error) {
		counties, err = s.store.TopCounties(gctx, qualityTopN)
		return err
	})
	g.Go(func() (err error) {
		coverage, err = s.store.Coverage(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range statuses {
		statuses[i].Percentage = compliance.Percentage(statuses[i].Count, total)
	}
	if statuses == nil {
		statuses = []models.StatusCount{}
	}
	if top == nil {
		top = []models.TopViolator{}
	}
	if counties == nil {
		counties = []models.CountyCount{}
	}

	var avg float64
	if coverage.SystemsWithViolations > 0 {
		avg = math.Round(10*float64(total)/float64(coverage.SystemsWithViolations)) / 10
	}

	return &models.DataQualityReport{
		TotalRecords:            total,
		StatusDistribution:      statuses,
		OpenEndedRecords:        openEnded,
		ActiveViolations:        active,
		ResolvedViolations:      resolved,
		UnknownViolations:       total - active - resolved,
		EnforcementOnlyRecords:  enforcementOnly,
		SystemsWithViolations:   coverage.SystemsWithViolations,
		AvgViolationsPerSystem:  avg,
		TopViolators:            top,
		GeographicRecords:       coverage.GeographicRecords,
		TopCounties:             counties,
		SystemsWithoutGeography: coverage.SystemsWithoutGeography,
		GeographyWithoutSystems: coverage.GeographyWithoutSystems,
		GeneratedAt:             s.opts.Clock().UTC(),
	}, nil
}
