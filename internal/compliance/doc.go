// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package compliance classifies SDWIS violation records and computes the
rollups shown on every dashboard.

Every endpoint that talks about "active" violations goes through Classify,
either directly or through the store filters in package query, which are
written to agree with it row for row.

Classification (first match wins):

 1. Enforcement-only row (no status, has an enforcement action type): Unknown
 2. Status Unaddressed or Addressed: Active
 3. Non-compliance end date present but not a date: Unknown
 4. No non-compliance end date: Active
 5. Status Resolved or Archived: Resolved
 6. Anything else: Unknown

Rollups:

  - Rollup: active, enforcement-action and total counts for one system
  - ComplianceRate: share of systems without active violations, 0-100
  - RiskScore: share of active violations that are health-based, 0-100
  - Deduplicate: violation history with enforcement rows collapsed

All functions are pure and safe for concurrent use.
*/
package compliance
