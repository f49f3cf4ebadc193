// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package api serves the dashboard's HTTP JSON API with the chi router.

Routes (canonical, under /api/v1):

	GET /systems?q=                   {"waterSystems": WaterSystem[]}
	GET /systems/{pwsid}              SystemDetail
	GET /systems/{pwsid}/violations   {"violations": ClassifiedViolation[]}
	GET /systems-by-county?name=      {"waterSystems": SystemWithRollup[]}
	GET /regulatory-summary           RegulatorySummary
	GET /data-quality                 DataQualityReport
	GET /health, /health/live, /health/ready

The routes used by the original web client are kept as aliases:
/api/water-systems, /api/water-systems/{pwsid}/violations,
/api/water-systems-by-county and /api/regulatory-data.

Operational endpoints: /metrics (Prometheus) and /swagger/ (OpenAPI UI).

Errors:

Every failure is written as {"error": "...", "code": "...", "request_id": "..."}.
Validation failures map to 400, store.ErrNotFound to 404,
store.ErrUnavailable to 503 and anything else to 500 with a generic
message; 5xx responses are logged with the request ID.

Middleware Stack (outermost first):

  - RequestID: X-Request-ID propagation and logging context
  - RealIP and Recoverer from chi
  - CORS from go-chi/cors
  - Per-IP rate limiting from go-chi/httprate
  - API security headers
  - Prometheus request metrics, labelled by route pattern
  - gzip compression of JSON bodies
*/
package api
