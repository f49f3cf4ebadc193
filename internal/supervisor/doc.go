// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package supervisor runs the dashboard's long-lived services under a suture v4
supervisor tree.

# Overview

	RootSupervisor ("speedofwater")
	├── DataSupervisor ("data-layer")
	│   ├── StoreMonitorService
	│   └── dashboard.Service (summary cache janitor)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failing store monitor restarts within the data layer without taking the
HTTP server down, and the API keeps answering health checks while the store
recovers.

Crashed services restart with suture's failure decay and backoff. Events
are logged through sutureslog, so main passes the slog adapter from the
logging package:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(monitor)
	tree.AddAPIService(httpSvc)
	return tree.Serve(ctx)

On shutdown each service gets ShutdownTimeout to return; stragglers are
listed by UnstoppedServiceReport.
*/
package supervisor
