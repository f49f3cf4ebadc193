// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/speedofwater/internal/api"
	"github.com/tomtom215/speedofwater/internal/config"
	"github.com/tomtom215/speedofwater/internal/dashboard"
	"github.com/tomtom215/speedofwater/internal/logging"
	"github.com/tomtom215/speedofwater/internal/store"
	"github.com/tomtom215/speedofwater/internal/supervisor"
	"github.com/tomtom215/speedofwater/internal/supervisor/services"
)

const (
	storeProbeInterval = 30 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// app holds the wired components of a running server.
type app struct {
	store     store.RecordStore
	dashboard *dashboard.Service
	router    http.Handler
	tree      *supervisor.SupervisorTree
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	raw, err := openStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	rs := store.NewGuarded(raw, store.DefaultBreakerSettings())

	svc := dashboard.NewService(rs, dashboard.OptionsFromConfig(cfg.API))
	handler := api.NewHandler(svc, cfg.API)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security)).SetupChi()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		_ = raw.Close(context.Background())
		return nil, fmt.Errorf("failed to create supervisor tree: %w", err)
	}
	tree.AddDataService(services.NewStoreMonitorService(rs, storeProbeInterval))
	tree.AddDataService(svc)
	tree.AddAPIService(services.NewHTTPServerService(services.NewHTTPServer(cfg.Server, router), shutdownTimeout))

	return &app{store: rs, dashboard: svc, router: router, tree: tree}, nil
}

// openStore connects the configured backend.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (store.RecordStore, error) {
	switch cfg.Backend {
	case "memory":
		logging.Warn().Msg("Using the built-in sample dataset; responses are not real SDWIS data")
		return store.NewMemoryStore(store.SampleDataset(time.Now())), nil
	case "mongo", "":
		s, err := store.Connect(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.store.Close(ctx); err != nil {
		logging.Error().Err(err).Msg("Error closing record store")
	}
}
