// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - Request ID: UUID-based request tracking. The ID is taken from an
    upstream X-Request-ID header when it looks sane, stored in the request
    context for logging.Ctx, and echoed in the response header.
  - Prometheus Metrics: request counters, latency histograms and an
    in-flight gauge, labelled by the chi route pattern rather than the raw
    path so that PWSIDs do not explode label cardinality.

Both middlewares use the http.HandlerFunc shape; the api package adapts
them to chi with a one-line wrapper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
