// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package api

import (
	"context"
	"time"

	"github.com/tomtom215/speedofwater/internal/config"
	"github.com/tomtom215/speedofwater/internal/models"
)

// Dashboard is the query surface the handlers need. *dashboard.Service
// implements it.
type Dashboard interface {
	Ping(ctx context.Context) error
	SearchSystems(ctx context.Context, q string) ([]models.WaterSystem, error)
	SystemDetail(ctx context.Context, pwsid string) (*models.SystemDetail, error)
	ViolationsForSystem(ctx context.Context, pwsid string) ([]models.ClassifiedViolation, error)
	SystemsInCounty(ctx context.Context, county string) ([]models.SystemWithRollup, error)
	RegulatorySummary(ctx context.Context, limit, months int) (*models.RegulatorySummary, error)
	DataQuality(ctx context.Context) (*models.DataQualityReport, error)
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and parameter helpers
//   - handlers_health.go: health and readiness probes
//   - handlers_systems.go: system search, detail, violations, county listing
//   - handlers_summary.go: regulatory summary and data-quality report
type Handler struct {
	dashboard Dashboard
	api       config.APIConfig
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	svc := dashboard.NewService(rs, dashboard.OptionsFromConfig(cfg.API))
//	handler := api.NewHandler(svc, cfg.API)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(d Dashboard, cfg config.APIConfig) *Handler {
	return &Handler{
		dashboard: d,
		api:       cfg,
		startTime: time.Now(),
	}
}
