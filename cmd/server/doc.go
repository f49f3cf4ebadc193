// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package main is the entry point for the Speed of Water API server.

The server answers the drinking-water compliance dashboard's JSON queries:
system search, per-system violation history, county rollups and the
regulator summary, all read from the EPA SDWIS collections in MongoDB.

# Application Architecture

	RootSupervisor ("speedofwater")
	├── DataSupervisor ("data-layer")
	│   ├── StoreMonitorService (store_up gauge)
	│   └── dashboard.Service (summary cache janitor)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Startup order:

 1. Configuration: Koanf v2 with defaults, config.yaml, .env and environment
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Record store: MongoDB (retried with backoff) or the built-in sample data,
    wrapped in a circuit breaker
 4. Dashboard service and chi router
 5. Supervisor tree until SIGINT or SIGTERM

# Configuration

	STORE_BACKEND=mongo|memory     record store (default: mongo)
	MONGO_URI_STRING               MongoDB connection string
	MONGO_DATABASE                 database name (default: speedofwater)
	HTTP_PORT                      listen port (default: 8080)

See the config package for the full list.

# Example Usage

Local development without MongoDB:

	STORE_BACKEND=memory ./speedofwater

Against a loaded database:

	export MONGO_URI_STRING="mongodb://localhost:27017"
	sdwis ingest --dir ./data
	./speedofwater
*/
package main
