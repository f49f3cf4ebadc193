// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/speedofwater/internal/logging"
	"github.com/tomtom215/speedofwater/internal/metrics"
)

// Pinger reports whether the record store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService probes the record store on a fixed interval,
// publishes the result on the store_up gauge and logs transitions.
type StoreMonitorService struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	name     string

	up     atomic.Bool
	probes atomic.Int64
}

// NewStoreMonitorService creates a monitor. Non-positive intervals become 30s.
// Each probe is bounded by half the interval.
func NewStoreMonitorService(pinger Pinger, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &StoreMonitorService{
		pinger:   pinger,
		interval: interval,
		timeout:  interval / 2,
		name:     "store-monitor",
	}
}

// Serve implements suture.Service. The first probe runs immediately.
func (m *StoreMonitorService) Serve(ctx context.Context) error {
	m.probe(ctx, true)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.probe(ctx, false)
		}
	}
}

func (m *StoreMonitorService) probe(ctx context.Context, first bool) {
	pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
	err := m.pinger.Ping(pingCtx)
	cancel()

	// Shutdown mid-probe is not a store failure.
	if ctx.Err() != nil {
		return
	}

	m.probes.Add(1)
	up := err == nil
	metrics.SetStoreUp(up)

	was := m.up.Swap(up)
	if !first && was == up {
		return
	}
	if up {
		logging.Info().Str("service", m.name).Msg("record store reachable")
	} else {
		logging.Warn().Err(err).Str("service", m.name).Msg("record store unreachable")
	}
}

// Healthy reports the result of the most recent probe.
func (m *StoreMonitorService) Healthy() bool {
	return m.up.Load()
}

// Probes returns how many probes have completed.
func (m *StoreMonitorService) Probes() int64 {
	return m.probes.Load()
}

// String names the service in supervisor logs.
func (m *StoreMonitorService) String() string {
	return m.name
}
