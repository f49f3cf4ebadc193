// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package services adapts dashboard components to suture's Serve pattern.

# Available Services

HTTPServerService wraps an *http.Server (or any HTTPServer). ListenAndServe
runs in a goroutine; context cancellation triggers Shutdown with a bounded
drain period. NewHTTPServer builds the server from config.ServerConfig.

StoreMonitorService pings the record store on an interval and publishes
the result on the store_up gauge. It logs only on state changes.

The dashboard summary cache janitor (dashboard.Service) already implements
suture.Service and is added to the data layer directly.

# Usage

	tree.AddDataService(services.NewStoreMonitorService(recordStore, 30*time.Second))
	tree.AddDataService(dashboardService)
	tree.AddAPIService(services.NewHTTPServerService(services.NewHTTPServer(cfg.Server, router), 10*time.Second))
*/
package services
