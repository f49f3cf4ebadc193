// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package metrics provides Prometheus metrics collection and export.

All collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

Store Metrics:
  - store_query_duration_seconds: Query execution time (histogram)
    Labels: operation, collection
  - store_query_errors_total: Failed queries (counter)
    Labels: operation, collection, error_type

API Metrics:
  - api_requests_total: Total requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Cache Metrics:
  - summary_cache_hits_total, summary_cache_misses_total (counters)
    Labels: cache (regulatory_summary, data_quality)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state

Ingestion Metrics:
  - ingest_rows_total: Rows written per collection (counter)
  - ingest_batch_retries_total: Retried batch writes per collection (counter)

# Usage

	start := time.Now()
	err := coll.FindOne(ctx, filter).Decode(&out)
	metrics.RecordStoreQuery("find_system", "pub_water_systems", time.Since(start), err)
*/
package metrics
