// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/speedofwater/internal/logging"
	"github.com/tomtom215/speedofwater/internal/metrics"
	"github.com/tomtom215/speedofwater/internal/models"
)

// BreakerSettings tunes the circuit breaker around a RecordStore.
type BreakerSettings struct {
	Name        string
	MaxRequests uint32        // probes allowed while half-open
	Interval    time.Duration // closed-state counting window
	Timeout     time.Duration // open-state wait before probing
	MinRequests uint32        // requests needed before the breaker may trip
	FailureRate float64       // trip threshold within the window
}

// DefaultBreakerSettings opens after 60% failures over at least 10 requests
// and probes again after 30 seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:        "record-store",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		MinRequests: 10,
		FailureRate: 0.6,
	}
}

// Guarded wraps a RecordStore with a circuit breaker. While the breaker is
// open every call fails immediately with ErrUnavailable.
type Guarded struct {
	inner RecordStore
	cb    *gobreaker.CircuitBreaker[any]
	name  string
}

// NewGuarded wraps inner.
func NewGuarded(inner RecordStore, s BreakerSettings) *Guarded {
	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= s.FailureRate {
				logging.Warn().
					Str("breaker", s.Name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("Opening circuit")
				return true
			}
			return false
		},
		// Lookups that find nothing and requests abandoned by the client say
		// nothing about store health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("Circuit state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &Guarded{inner: inner, cb: cb, name: s.Name}
}

// State returns the breaker state as "closed", "half-open", or "open".
func (g *Guarded) State() string {
	return stateToString(g.cb.State())
}

func (g *Guarded) execute(fn func() (any, error)) (any, error) {
	result, err := g.cb.Execute(fn)
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(g.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(g.name).Set(0)
		return result, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(g.name, "rejected").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(g.name, "failure").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(g.name).Set(float64(g.cb.Counts().ConsecutiveFailures))
	return nil, err
}

// guard runs fn through the breaker and restores its static result type.
func guard[T any](g *Guarded, fn func() (T, error)) (T, error) {
	result, err := g.execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := result.(T)
	if !ok && result != nil {
		var zero T
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Ping implements RecordStore.
func (g *Guarded) Ping(ctx context.Context) error {
	_, err := g.execute(func() (any, error) { return nil, g.inner.Ping(ctx) })
	return err
}

// Close implements RecordStore. It bypasses the breaker.
func (g *Guarded) Close(ctx context.Context) error {
	return g.inner.Close(ctx)
}

// SearchSystems implements RecordStore.
func (g *Guarded) SearchSystems(ctx context.Context, q string, limit int) ([]models.WaterSystem, error) {
	return guard(g, func() ([]models.WaterSystem, error) { return g.inner.SearchSystems(ctx, q, limit) })
}

// FindSystem implements RecordStore.
func (g *Guarded) FindSystem(ctx context.Context, pwsid string) (models.WaterSystem, error) {
	return guard(g, func() (models.WaterSystem, error) { return g.inner.FindSystem(ctx, pwsid) })
}

// FindViolations implements RecordStore.
func (g *Guarded) FindViolations(ctx context.Context, pwsid string) ([]models.ViolationRecord, error) {
	return guard(g, func() ([]models.ViolationRecord, error) { return g.inner.FindViolations(ctx, pwsid) })
}

// FindViolationsForSystems implements RecordStore.
func (g *Guarded) FindViolationsForSystems(ctx context.Context, pwsids []string) ([]models.ViolationRecord, error) {
	return guard(g, func() ([]models.ViolationRecord, error) { return g.inner.FindViolationsForSystems(ctx, pwsids) })
}

// CountySystems implements RecordStore.
func (g *Guarded) CountySystems(ctx context.Context, county string) ([]models.SystemRef, error) {
	return guard(g, func() ([]models.SystemRef, error) { return g.inner.CountySystems(ctx, county) })
}

// CountViolations implements RecordStore.
func (g *Guarded) CountViolations(ctx context.Context, filter models.ViolationFilter) (int64, error) {
	return guard(g, func() (int64, error) { return g.inner.CountViolations(ctx, filter) })
}

// CountDistinctSystems implements RecordStore.
func (g *Guarded) CountDistinctSystems(ctx context.Context, filter models.ViolationFilter) (int64, error) {
	return guard(g, func() (int64, error) { return g.inner.CountDistinctSystems(ctx, filter) })
}

// SystemTotals implements RecordStore.
func (g *Guarded) SystemTotals(ctx context.Context) (models.SystemTotals, error) {
	return guard(g, func() (models.SystemTotals, error) { return g.inner.SystemTotals(ctx) })
}

// GroupByCategory implements RecordStore.
func (g *Guarded) GroupByCategory(ctx context.Context, limit int) ([]models.CategoryCount, error) {
	return guard(g, func() ([]models.CategoryCount, error) { return g.inner.GroupByCategory(ctx, limit) })
}

// GroupByMonth implements RecordStore.
func (g *Guarded) GroupByMonth(ctx context.Context, since, until time.Time) ([]models.MonthCount, error) {
	return guard(g, func() ([]models.MonthCount, error) { return g.inner.GroupByMonth(ctx, since, until) })
}

// TopViolators implements RecordStore.
func (g *Guarded) TopViolators(ctx context.Context, limit int) ([]models.TopViolator, error) {
	return guard(g, func() ([]models.TopViolator, error) { return g.inner.TopViolators(ctx, limit) })
}

// StatusDistribution implements RecordStore.
func (g *Guarded) StatusDistribution(ctx context.Context) ([]models.StatusCount, error) {
	return guard(g, func() ([]models.StatusCount, error) { return g.inner.StatusDistribution(ctx) })
}

// TopCounties implements RecordStore.
func (g *Guarded) TopCounties(ctx context.Context, limit int) ([]models.CountyCount, error) {
	return guard(g, func() ([]models.CountyCount, error) { return g.inner.TopCounties(ctx, limit) })
}

// Coverage implements RecordStore.
func (g *Guarded) Coverage(ctx context.Context) (models.CoverageCounts, error) {
	return guard(g, func() (models.CoverageCounts, error) { return g.inner.Coverage(ctx) })
}

var _ RecordStore = (*Guarded)(nil)
