// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package config loads and validates Speed of Water configuration.

# Configuration Sources

Sources are layered, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, or config.yaml / config.yml in the
    working directory, or /etc/speedofwater/config.yaml
 3. Environment variables, mapped explicitly in envTransformFunc

A .env file in the working directory (or at DOTENV_PATH) is read into the
process environment before step 3. Variables already set in the
environment are never overwritten by it.

# Environment Variables

Database:
  - STORE_BACKEND: mongo or memory (default: mongo)
  - MONGO_URI_STRING: MongoDB connection string (MONGO_URI is accepted as a fallback)
  - MONGO_DATABASE: database name (default: speedofwater)
  - MONGO_MAX_POOL_SIZE: connection pool size (default: 5)
  - MONGO_QUERY_TIMEOUT: per-query timeout (default: 20s)

HTTP Server:
  - HTTP_HOST, HTTP_PORT (default: 8080), HTTP_TIMEOUT (default: 30s)
  - ENVIRONMENT: development or production

API:
  - API_SEARCH_LIMIT, API_DEFAULT_TOP_LIMIT, API_MAX_TOP_LIMIT
  - API_DEFAULT_MONTHS_BACK, API_MAX_MONTHS_BACK, API_CACHE_TTL

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Ingest:
  - INGEST_BATCH_SIZE (default: 1000), INGEST_MAX_RETRY_TIME (default: 2m)
  - INGEST_MAX_BATCHES_PER_SECOND (default: 0, unthrottled)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

Config is immutable after Load and safe for concurrent reads.
*/
package config
